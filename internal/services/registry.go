package services

// ServiceContainer bundles every service for wiring in app.SetupRouter.
type ServiceContainer struct {
	AuthService        AuthService
	ProfileService     ProfileService
	ProjectService     ProjectService
	ApplicationService ApplicationService
	MessageService     MessageService
}
