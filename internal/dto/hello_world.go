package dto

// HelloWorldResponse is the body of the hello-world-bean endpoint.
type HelloWorldResponse struct {
	Message string `json:"message"`
}
