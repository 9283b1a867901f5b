package handlers

import (
	"net/http"
	"strings"
	"taxOffice/internal/enums"
	"taxOffice/internal/errs"
	"taxOffice/internal/models"
	"taxOffice/internal/msgs"
	"taxOffice/internal/utils"

	"github.com/gin-gonic/gin"
)

func MustAuthenticateMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		jwtToken := ctx.GetHeader("Authorization")
		if strings.Contains(jwtToken, "Bearer") {
			jwtToken = strings.Replace(jwtToken, "Bearer ", "", 1)
		}

		if jwtToken == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []error{errs.ErrUnauthorized},
			})
			return
		}

		claims, err := utils.VerifyToken(jwtToken, utils.GetJwtKey())
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []error{errs.ErrUnauthorized},
			})
			return
		}

		ctx.Set("claims", claims)
		ctx.Set("user_id", claims.ID)
		ctx.Set("user_role", claims.Role)
		ctx.Next()
	}
}

func MustBeStaffMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !GetUserRole(ctx).IsStaff() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, models.Response{
				Success: false,
				Message: msgs.MsgStaffOnly,
				Errors:  []error{errs.ErrForbidden},
			})
			return
		}
		ctx.Next()
	}
}

func GetClaims(ctx *gin.Context) *models.Claims {
	value, exists := ctx.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := value.(*models.Claims)
	if !ok {
		return nil
	}
	return claims
}

func GetUserRole(ctx *gin.Context) enums.Role {
	claims := GetClaims(ctx)
	if claims == nil {
		return ""
	}
	return claims.Role
}
