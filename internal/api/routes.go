package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	apperrors "weko_authors_go_backend/internal/errors"
	"weko_authors_go_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, authorService services.AuthorServiceDB, prefixService, affiliationService services.SchemeSettingServiceDB) {
	api := r.Group("/api")
	{
		api.POST("/authors", createAuthorHandler(authorService))
		api.POST("/authors/sequence", reserveAuthorIDHandler(authorService))
		api.GET("/authors/:id", getAuthorHandler(authorService))
		api.GET("/authors/:id/email", getAuthorEmailHandler(authorService))

		registerSchemeSettingRoutes(api.Group("/settings/prefix"), prefixService)
		registerSchemeSettingRoutes(api.Group("/settings/affiliation"), affiliationService)
	}
}

func registerSchemeSettingRoutes(g *gin.RouterGroup, store services.SchemeSettingServiceDB) {
	g.GET("", listSchemeSettingsHandler(store))
	g.POST("", createSchemeSettingHandler(store))
	g.GET("/:id", getSchemeSettingHandler(store))
	g.PUT("/:id", updateSchemeSettingHandler(store))
	g.DELETE("/:id", deleteSchemeSettingHandler(store))
}

func createAuthorHandler(authorService services.AuthorServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data map[string]interface{}
		if err := c.ShouldBindJSON(&data); err != nil && !errors.Is(err, io.EOF) {
			apperrors.HandleError(c, apperrors.New400Error("Author metadata must be a JSON object"))
			return
		}

		author, err := authorService.CreateAuthor(data)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		metadata, err := author.Metadata()
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":   author.ID,
			"json": metadata,
		})
	}
}

func reserveAuthorIDHandler(authorService services.AuthorServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := authorService.GetSequence(nil)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

func getAuthorHandler(authorService services.AuthorServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			apperrors.HandleError(c, apperrors.New400Error("Invalid author id"))
			return
		}

		data, err := authorService.LookupAuthorByID(id)
		if errors.Is(err, services.ErrAuthorNotFound) {
			apperrors.HandleError(c, apperrors.New404Error("Author not found"))
			return
		}
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

func getAuthorEmailHandler(authorService services.AuthorServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			apperrors.HandleError(c, apperrors.New400Error("Invalid author id"))
			return
		}

		email, err := authorService.LookupFirstEmailByID(id)
		switch {
		case errors.Is(err, services.ErrAuthorNotFound):
			apperrors.HandleError(c, apperrors.New404Error("Author not found"))
		case errors.Is(err, services.ErrEmailNotFound):
			apperrors.HandleError(c, apperrors.New404Error("Author has no email"))
		case err != nil:
			apperrors.HandleError(c, err)
		default:
			c.JSON(http.StatusOK, gin.H{"email": email})
		}
	}
}

func listSchemeSettingsHandler(store services.SchemeSettingServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := store.List()
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

func getSchemeSettingHandler(store services.SchemeSettingServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := settingID(c)
		if !ok {
			return
		}
		setting, err := store.Get(id)
		if err != nil {
			handleSettingError(c, err)
			return
		}
		c.JSON(http.StatusOK, setting)
	}
}

func createSchemeSettingHandler(store services.SchemeSettingServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindSchemeSetting(c)
		if !ok {
			return
		}
		setting, err := store.Create(req.Name, req.Scheme, req.URL)
		if err != nil {
			handleSettingError(c, err)
			return
		}
		c.JSON(http.StatusCreated, setting)
	}
}

func updateSchemeSettingHandler(store services.SchemeSettingServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := settingID(c)
		if !ok {
			return
		}
		req, ok := bindSchemeSetting(c)
		if !ok {
			return
		}
		if err := store.Update(id, req.Name, req.Scheme, req.URL); err != nil {
			handleSettingError(c, err)
			return
		}
		setting, err := store.Get(id)
		if err != nil {
			handleSettingError(c, err)
			return
		}
		c.JSON(http.StatusOK, setting)
	}
}

func deleteSchemeSettingHandler(store services.SchemeSettingServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := settingID(c)
		if !ok {
			return
		}
		if err := store.Delete(id); err != nil {
			handleSettingError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func settingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		apperrors.HandleError(c, apperrors.New400Error("Invalid setting id"))
		return 0, false
	}
	return uint(id), true
}

func bindSchemeSetting(c *gin.Context) (SchemeSettingRequest, bool) {
	var req SchemeSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.New400Error("Invalid request body"))
		return req, false
	}
	if err := req.Validate(); err != nil {
		apperrors.HandleError(c, apperrors.New400Error(err.Error()))
		return req, false
	}
	return req, true
}

func handleSettingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		apperrors.HandleError(c, apperrors.New404Error("Setting not found"))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		apperrors.HandleError(c, apperrors.New409Error("A setting with this name already exists", err))
	default:
		apperrors.HandleError(c, err)
	}
}
