package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	LandHandler     *LandHandler
	InputHandler    *InputHandler
	ServiceHandler  *ServiceHandler
	VideoHandler    *VideoHandler
}
