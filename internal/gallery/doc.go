// Package gallery renders the catalog into a static HTML page.
//
// The page is produced from a user-supplied template containing two markers:
// __TEMPLATE_TITLE__ receives the escaped page title and
// __TEMPLATE_MOVIE_GRID__ receives one <li> card per movie. Card markup is
// built with html/template so titles, notes, and URLs are escaped.
package gallery
