package response

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

var (
	ErrInvalidRequestFormat = Message{Message: "Invalid request format."}
	ErrUnauthenticated      = Message{Message: "Unauthenticated."}
	ErrAdminRequired        = Message{Message: "Admin access required."}
	ErrInternal             = Message{Message: "Internal server error."}
)
