// Package contract is the single source of truth for the HTTP API surface.
// The server registers every route from this table and clients build URLs
// from it, so adding or changing a route is a one-place edit.
package contract

import (
	"strings"
)

type Route struct {
	Method string
	Path   string
}

type AuthRoutes struct {
	Register Route
	Login    Route
	Me       Route
}

type SessionRoutes struct {
	List   Route
	Get    Route
	Create Route
	Update Route
	Delete Route
	Play   Route
}

type TeacherRoutes struct {
	List   Route
	Get    Route
	Create Route
	Update Route
	Delete Route
}

type FavoriteRoutes struct {
	List   Route
	Toggle Route
	Check  Route
}

type ProgressRoutes struct {
	Record Route
	Stats  Route
}

type StatsRoutes struct {
	Usage Route
}

type HomeRoutes struct {
	Daily    Route
	Featured Route
	Popular  Route
}

type Registry struct {
	Health    Route
	Auth      AuthRoutes
	Sessions  SessionRoutes
	Teachers  TeacherRoutes
	Favorites FavoriteRoutes
	Progress  ProgressRoutes
	Stats     StatsRoutes
	Home      HomeRoutes
}

var API = Registry{
	Health: Route{Method: "GET", Path: "/api/health"},
	Auth: AuthRoutes{
		Register: Route{Method: "POST", Path: "/api/auth/register"},
		Login:    Route{Method: "POST", Path: "/api/auth/login"},
		Me:       Route{Method: "GET", Path: "/api/auth/me"},
	},
	Sessions: SessionRoutes{
		List:   Route{Method: "GET", Path: "/api/sessions"},
		Get:    Route{Method: "GET", Path: "/api/sessions/:id"},
		Create: Route{Method: "POST", Path: "/api/sessions"},
		Update: Route{Method: "PUT", Path: "/api/sessions/:id"},
		Delete: Route{Method: "DELETE", Path: "/api/sessions/:id"},
		Play:   Route{Method: "POST", Path: "/api/sessions/:id/play"},
	},
	Teachers: TeacherRoutes{
		List:   Route{Method: "GET", Path: "/api/teachers"},
		Get:    Route{Method: "GET", Path: "/api/teachers/:id"},
		Create: Route{Method: "POST", Path: "/api/teachers"},
		Update: Route{Method: "PUT", Path: "/api/teachers/:id"},
		Delete: Route{Method: "DELETE", Path: "/api/teachers/:id"},
	},
	Favorites: FavoriteRoutes{
		List:   Route{Method: "GET", Path: "/api/favorites"},
		Toggle: Route{Method: "POST", Path: "/api/favorites/:sessionId"},
		Check:  Route{Method: "GET", Path: "/api/favorites/:sessionId/check"},
	},
	Progress: ProgressRoutes{
		Record: Route{Method: "POST", Path: "/api/progress"},
		Stats:  Route{Method: "GET", Path: "/api/progress/stats"},
	},
	Stats: StatsRoutes{
		Usage: Route{Method: "GET", Path: "/api/stats/usage"},
	},
	Home: HomeRoutes{
		Daily:    Route{Method: "GET", Path: "/api/home/daily"},
		Featured: Route{Method: "GET", Path: "/api/home/featured"},
		Popular:  Route{Method: "GET", Path: "/api/home/popular"},
	},
}

// All returns every declared route, for registration and contract tests.
func (r Registry) All() []Route {
	return []Route{
		r.Health,
		r.Auth.Register, r.Auth.Login, r.Auth.Me,
		r.Sessions.List, r.Sessions.Get, r.Sessions.Create,
		r.Sessions.Update, r.Sessions.Delete, r.Sessions.Play,
		r.Teachers.List, r.Teachers.Get, r.Teachers.Create,
		r.Teachers.Update, r.Teachers.Delete,
		r.Favorites.List, r.Favorites.Toggle, r.Favorites.Check,
		r.Progress.Record, r.Progress.Stats,
		r.Stats.Usage,
		r.Home.Daily, r.Home.Featured, r.Home.Popular,
	}
}

// BuildURL substitutes each :param token in a path template with the matching
// value. Tokens without a matching param are left literal.
func BuildURL(path string, params map[string]string) string {
	url := path
	for key, value := range params {
		url = strings.ReplaceAll(url, ":"+key, value)
	}
	return url
}
