package health

import (
	"github.com/ethanbaker/api/pkg/api_types"
	"github.com/gin-gonic/gin"
)

// Return status of the API and its backing store
func getStatus(c *gin.Context) {
	res := api_types.NewSuccessResponse("UP", nil)
	c.JSON(res.AsGinResponse())
}
