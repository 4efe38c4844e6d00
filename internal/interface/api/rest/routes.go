package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	// public file drop
	RouteFiles       = RouteApiV1 + "/files"
	RouteFile        = RouteFiles + "/:code"
	RouteFileContent = RouteFile + "/content"
	RouteOwnerDelete = RouteFile + "/:token"

	// admin
	RouteAdmin      = RouteApiV1 + "/admin"
	RouteAdminFiles = RouteAdmin + "/files"
	RouteAdminFile  = RouteAdminFiles + "/:id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
