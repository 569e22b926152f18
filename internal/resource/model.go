package resource

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day. It marshals as the bare "YYYY-MM-DD" string
// the API has always returned, not as a full RFC3339 timestamp.
type Date time.Time

func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	return d.parse(strings.Trim(string(b), `"`))
}

func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		*d = Date(v)
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	}
	return fmt.Errorf("unsupported date value %T", value)
}

// Drivers hand date columns back in a few different shapes.
func (d *Date) parse(s string) error {
	for _, layout := range []string{
		dateLayout,
		time.RFC3339,
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = Date(t)
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as a date", s)
}

// ============================
// 🔷 GORM Content Models
//
// Five independent record kinds sharing the same lifecycle: created once,
// listed newest-first, deleted by id. No updates, no relations.

type Project struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	LogoURL   string    `gorm:"type:text" json:"logo_url"`
	Link      string    `gorm:"type:text" json:"link"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	EventDate *Date     `gorm:"type:date" json:"event_date"`
	Location  string    `gorm:"type:text" json:"location"`
	Link      string    `gorm:"type:text" json:"link"`
	ImageURL  string    `gorm:"type:text" json:"image_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type News struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ImageURL    string    `gorm:"type:text" json:"image_url"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (News) TableName() string { return "news" }

type Blog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Excerpt   string    `gorm:"type:text;not null" json:"excerpt"`
	Author    string    `gorm:"type:text;not null" json:"author"`
	ImageURL  string    `gorm:"type:text" json:"image_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type JoinRequest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"type:text;not null" json:"full_name"`
	Email     string    `gorm:"type:text" json:"email"`
	Whatsapp  string    `gorm:"type:text" json:"whatsapp"`
	Country   string    `gorm:"type:text" json:"country"`
	Company   string    `gorm:"type:text" json:"company"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
