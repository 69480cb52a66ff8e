package http_api

// routes sets up the routes for the HTTP server.
func (s *HTTPServer) routes() {
	// Backend surface consumed by the dashboard pages
	s.router.GET("/api/get-pending-companies", s.getPendingCompanies)
	s.router.POST("/api/activate-company", s.activateCompany)
	s.router.POST("/api/delete-company", s.deleteCompany)
	s.router.POST("/api/register-company", s.registerCompany)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/admin/access", s.adminAccess)
		v1.GET("/companies", s.companies)
		v1.GET("/contributor", s.contributor)
		v1.GET("/batches", s.batches)
		v1.POST("/batches", s.createBatch)
		v1.POST("/session/reset", s.resetSession)
	}
}
