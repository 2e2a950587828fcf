package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yigit/prisonadmin/internal/app/controllers"
	"github.com/yigit/prisonadmin/internal/app/models/dto"
)

// SetupRouter binds every route to its controller operation
func SetupRouter(router *gin.Engine, ctrls *controllers.Controllers) {
	router.GET("/health", ctrls.Admin.Health)

	// Database lifecycle
	router.GET("/check-db-connection", ctrls.Admin.CheckDBConnection)
	router.POST("/init-db", ctrls.Admin.InitDB)
	router.POST("/insert-data", ctrls.Admin.InsertData)

	// Inmates
	router.GET("/inmates", ctrls.Inmate.GetAllInmates)
	router.GET("/inmates/:inmateId", ctrls.Inmate.GetInmateByID)
	router.POST("/add-inmate", ctrls.Inmate.AddInmate)
	router.POST("/add-complete-inmate", ctrls.Inmate.AddCompleteInmate)
	router.POST("/remove-inmate", ctrls.Inmate.RemoveInmate)
	router.POST("/transfer-inmate", ctrls.Inmate.TransferInmate)
	router.GET("/inmates-leaving-soon", ctrls.Inmate.GetInmatesLeavingSoon)
	router.GET("/inmates-by-cell/:cellType", ctrls.Inmate.GetInmatesByCell)
	router.GET("/basic-inmate-info", ctrls.Inmate.GetBasicInmateInfo)
	router.GET("/inmates-count", ctrls.Inmate.CountInmates)
	router.GET("/inmate-history/:inmateId", ctrls.Inmate.GetInmateHistory)

	// Medical
	router.GET("/inmates-with-medical", ctrls.Medical.GetInmatesWithMedical)
	router.GET("/medical-data", ctrls.Medical.GetMedicalData)
	router.GET("/medical-records", ctrls.Medical.GetMedicalRecords)
	router.POST("/add-medical", ctrls.Medical.AddMedicalRecord)
	router.GET("/medical-joined", ctrls.Medical.GetMedicalJoined)

	// Sentences
	router.GET("/sentences", ctrls.Sentence.GetSentences)
	router.POST("/add-sentence", ctrls.Sentence.AddSentence)
	router.POST("/reduce-sentence", ctrls.Sentence.ReduceSentence)

	// Facilities
	router.GET("/prison-security", ctrls.Facility.GetSecurityLevels)
	router.POST("/add-prison-security", ctrls.Facility.AddSecurityLevel)
	router.GET("/prisons", ctrls.Facility.GetPrisons)
	router.POST("/add-prison", ctrls.Facility.AddPrison)
	router.GET("/cells", ctrls.Facility.GetCells)
	router.GET("/cells-count", ctrls.Facility.CountCells)
	router.POST("/add-cell", ctrls.Facility.AddCell)
	router.POST("/remove-cell", ctrls.Facility.RemoveCell)
	router.GET("/amenities", ctrls.Facility.GetAmenities)
	router.POST("/add-amenity", ctrls.Facility.AddAmenity)
	router.GET("/clubs", ctrls.Facility.GetClubs)
	router.POST("/add-club", ctrls.Facility.AddClub)

	// Staff
	router.GET("/employees", ctrls.Staff.GetEmployees)
	router.POST("/add-employee", ctrls.Staff.AddEmployee)
	router.POST("/assign-employee", ctrls.Staff.AssignEmployee)
	router.POST("/add-certification", ctrls.Staff.AddCertification)
	router.GET("/employees-high-security", ctrls.Staff.GetHighSecurityEmployees)

	// Reports
	router.GET("/inmates-count-by-cell", ctrls.Report.GetInmateCountByCell)
	router.GET("/crowded-cells/:minimumCount", ctrls.Report.GetCrowdedCells)
	router.GET("/high-severity-prisons", ctrls.Report.GetHighSeverityPrisons)
	router.GET("/inmates-all-cells", ctrls.Report.GetInmatesInAllCells)
}

// SetupMetrics exposes the registry in the Prometheus text format
func SetupMetrics(router *gin.Engine, gatherer prometheus.Gatherer) {
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// SetupStatic serves the admin pages from dir for any GET that matches no route.
// Other unmatched requests get a JSON 404 envelope.
func SetupStatic(router *gin.Engine, dir string) {
	files := http.FileServer(http.Dir(dir))

	router.NoRoute(func(c *gin.Context) {
		if dir != "" && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
			files.ServeHTTP(c.Writer, c.Request)
			return
		}
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found")))
	})
}
