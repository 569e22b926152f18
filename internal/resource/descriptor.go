package resource

// Field is one text column of a record kind. Date fields are still
// submitted as text and must parse as YYYY-MM-DD.
type Field struct {
	Name     string
	Required bool
	Date     bool
}

// Descriptor is everything the generic store and handler need to know
// about one record kind. The five descriptors below are the only
// per-kind configuration in the whole resource layer.
type Descriptor struct {
	Kind   string // response key, e.g. "project"
	Label  string // human-readable name for error messages
	Table  string
	Fields []Field

	PublicCreate bool // join requests are submitted without a session
	GuardedList  bool // join requests are listed only by the admin
}

// Values carries one create request's fields after trimming and
// validation, keyed by field name.
type Values struct {
	Text  map[string]string
	Dates map[string]*Date
}

var Projects = Descriptor{
	Kind:  "project",
	Label: "Project",
	Table: "projects",
	Fields: []Field{
		{Name: "name", Required: true},
		{Name: "logo_url"},
		{Name: "link"},
	},
}

var Events = Descriptor{
	Kind:  "event",
	Label: "Event",
	Table: "events",
	Fields: []Field{
		{Name: "name", Required: true},
		{Name: "event_date", Date: true},
		{Name: "location"},
		{Name: "link"},
		{Name: "image_url"},
	},
}

var NewsItems = Descriptor{
	Kind:  "news",
	Label: "News",
	Table: "news",
	Fields: []Field{
		{Name: "title", Required: true},
		{Name: "description", Required: true},
		{Name: "image_url"},
	},
}

var Blogs = Descriptor{
	Kind:  "blog",
	Label: "Blog",
	Table: "blogs",
	Fields: []Field{
		{Name: "title", Required: true},
		{Name: "excerpt", Required: true},
		{Name: "author", Required: true},
		{Name: "image_url"},
	},
}

var JoinRequests = Descriptor{
	Kind:  "join_request",
	Label: "Join request",
	Table: "join_requests",
	Fields: []Field{
		{Name: "full_name", Required: true},
		{Name: "email"},
		{Name: "whatsapp"},
		{Name: "country"},
		{Name: "company"},
	},
	PublicCreate: true,
	GuardedList:  true,
}

// Builders map validated values onto the typed models.

func NewProject(v Values) Project {
	return Project{
		Name:    v.Text["name"],
		LogoURL: v.Text["logo_url"],
		Link:    v.Text["link"],
	}
}

func NewEvent(v Values) Event {
	return Event{
		Name:      v.Text["name"],
		EventDate: v.Dates["event_date"],
		Location:  v.Text["location"],
		Link:      v.Text["link"],
		ImageURL:  v.Text["image_url"],
	}
}

func NewNews(v Values) News {
	return News{
		Title:       v.Text["title"],
		Description: v.Text["description"],
		ImageURL:    v.Text["image_url"],
	}
}

func NewBlog(v Values) Blog {
	return Blog{
		Title:    v.Text["title"],
		Excerpt:  v.Text["excerpt"],
		Author:   v.Text["author"],
		ImageURL: v.Text["image_url"],
	}
}

func NewJoinRequest(v Values) JoinRequest {
	return JoinRequest{
		FullName: v.Text["full_name"],
		Email:    v.Text["email"],
		Whatsapp: v.Text["whatsapp"],
		Country:  v.Text["country"],
		Company:  v.Text["company"],
	}
}
