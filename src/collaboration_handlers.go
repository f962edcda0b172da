package main

import (
	"errors"
	"log"
	"net/http"

	"culturebites/src/db"
	"culturebites/src/models"
	"culturebites/src/types"
	"culturebites/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func collaborationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/collaborations", func(ctx *gin.Context) {
			var body types.CreateCollaborationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			proposal, err := utils.ProposeCollaboration(db.GetDb(), userId, &body)
			if err != nil {
				log.Printf("Error creating collaboration request: %s\n", err.Error())
				switch {
				case errors.Is(err, utils.ErrProfileNotFound), errors.Is(err, utils.ErrEventNotFound):
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				default:
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				}
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": proposal})
		}).
		GET("/collaborations", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			role := ctx.GetString("role")
			var proposals []models.CollaborationRequest
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				switch types.Role(role) {
				case types.ROLE_COOK:
					var cook models.Cook
					if err := tx.Where(&models.Cook{UserID: userId}).First(&cook).Error; err != nil {
						return err
					}
					return tx.
						Where(&models.CollaborationRequest{FromCookID: cook.ID}).
						Preload("Event").
						Order("created_at desc").
						Find(&proposals).
						Error
				case types.ROLE_HOST:
					var host models.Host
					if err := tx.Where(&models.Host{UserID: userId}).First(&host).Error; err != nil {
						return err
					}
					return tx.
						Where(&models.CollaborationRequest{ToHostID: host.ID}).
						Preload("Event").
						Order("created_at desc").
						Find(&proposals).
						Error
				default:
					return utils.ErrProfileNotFound
				}
			})
			if err != nil {
				log.Printf("Error retrieving collaboration requests: %s\n", err.Error())
				if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, utils.ErrProfileNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": proposals, "count": len(proposals)})
		}).
		PUT("/collaborations/:id/accept", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			proposal, err := utils.AcceptCollaboration(db.GetDb(), userId, params.ID)
			if err != nil {
				log.Printf("Error accepting collaboration %d: %s\n", params.ID, err.Error())
				collaborationErrorResponse(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": proposal})
		}).
		PUT("/collaborations/:id/decline", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			proposal, err := utils.DeclineCollaboration(db.GetDb(), userId, params.ID)
			if err != nil {
				log.Printf("Error declining collaboration %d: %s\n", params.ID, err.Error())
				collaborationErrorResponse(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": proposal})
		})
	return g
}

func collaborationErrorResponse(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrCollaborationNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, utils.ErrInvalidTransition):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
