package handlers

// AppHandlers bundles every handler of the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ProfileHandler     *ProfileHandler
	ProjectHandler     *ProjectHandler
	ApplicationHandler *ApplicationHandler
	MessageHandler     *MessageHandler
}
