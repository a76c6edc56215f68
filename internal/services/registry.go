package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService     AuthService
	CategoryService CategoryService
	ProductService  ProductService
	LandService     LandService
	InputService    InputService
	ServiceService  FarmServiceService
	VideoService    VideoService
}
