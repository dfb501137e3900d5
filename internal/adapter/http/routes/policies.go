package routes

import (
	"apolices_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPolicies     = "/policies"
	PathEndorsements = "/:numero/endorsements"
)

func addPolicyRoutes(rg *gin.RouterGroup, policyHandler *handlers.PolicyHandler, endorsementHandler *handlers.EndorsementHandler) {
	policies := rg.Group(PathPolicies)
	{
		policies.POST("", policyHandler.CreatePolicy)
		policies.GET("", policyHandler.ListPolicies)
		policies.GET("/:numero", policyHandler.GetPolicy)
	}

	endorsements := policies.Group(PathEndorsements)
	{
		endorsements.POST("", endorsementHandler.CreateEndorsement)
		endorsements.GET("", endorsementHandler.ListEndorsements)
		endorsements.GET("/:id", endorsementHandler.GetEndorsement)
	}
}
