package site

// Route is a page of the client application.
type Route struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

// ClientRoutes lists the pages the browser app renders.
var ClientRoutes = []Route{
	{Path: "/", Title: "Home"},
	{Path: "/about", Title: "About"},
	{Path: "/team", Title: "Team"},
	{Path: "/portfolio", Title: "Portfolio"},
	{Path: "/programs", Title: "Programs"},
	{Path: "/apply", Title: "Apply"},
	{Path: "/resources", Title: "Resources"},
	{Path: "/blog", Title: "Blog"},
	{Path: "/faq", Title: "FAQ"},
	{Path: "/jobs", Title: "Jobs"},
	{Path: "/get-involved", Title: "Get Involved"},
}

func isClientRoute(path string) bool {
	for _, r := range ClientRoutes {
		if r.Path == path {
			return true
		}
	}
	return false
}
