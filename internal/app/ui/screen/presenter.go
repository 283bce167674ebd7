//go:generate mockgen -source=presenter.go -destination=presenter_mock.go -package=screen
package screen

import "coinscope/internal/app/ui/tabs"

// Presenter receives the requests the coordinator issues to the presentation layer
type Presenter interface {
	// TabSelected is the user-facing side effect of a tab click
	TabSelected(id tabs.ID)
	// PageCreated hands over a page built on first activation so its own init can run
	PageCreated(id tabs.ID, page tabs.Page)
	// OpenNotificationMenu opens the notification configuration surface
	OpenNotificationMenu(subject, label string)
	// ShowConfirmation shows a transient, non-blocking message
	ShowConfirmation(text string)
	// NavigateBack pops the screen
	NavigateBack()
}
