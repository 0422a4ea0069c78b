package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/santiagovm/musiccloud/models"
)

func (app *Application) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.CORS())
	e.Use(app.RequestLoggerMiddleware)

	e.HTTPErrorHandler = HandleError

	e.GET("/", HandleRoot)

	e.POST("/usuarios", app.HandleCreateUsuario)
	e.PUT("/usuarios/:id/estado", app.HandleUpdateEstado)
	e.POST("/usuarios/:id/musica", app.HandleAddMusica)
	e.GET("/usuarios/:id", app.HandleGetProfile)

	e.GET("/musica", app.HandleListMusica)
	e.POST("/musica", app.HandleCreateMusica)

	return e
}

// HandleError serializes every error as {"detail": string}, the shape clients
// of this API expect.
func HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			detail = m
		case error:
			detail = m.Error()
		default:
			detail = fmt.Sprintf("%v", m)
		}
	}

	if err := c.JSON(code, models.ErrorResponse{Detail: detail}); err != nil {
		c.Logger().Error(err)
	}
}

func HandleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Welcome to the Music Cloud API"})
}

func (app *Application) HandleCreateUsuario(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidRequest)
	}

	if req.Nombre == "" || req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidRequest)
	}

	user, err := app.RegisterUser(req.Nombre, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrEmailAlreadyRegistered) {
			return echo.NewHTTPError(http.StatusBadRequest, models.ErrEmailAlreadyRegistered)
		}

		c.Logger().Error(err)
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

func (app *Application) HandleUpdateEstado(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	var req models.UpdateEstadoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidRequest)
	}

	if req.Estado == nil {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidRequest)
	}

	user, err := app.SetUserEstado(userID, *req.Estado)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, models.ErrUserNotFound)
		}

		c.Logger().Error(err)
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (app *Application) HandleAddMusica(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	var req models.AddMusicaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidRequest)
	}

	if req.MusicaID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidRequest)
	}

	if err := app.AddSongToLibrary(userID, req.MusicaID); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, models.ErrUserNotFound)
		}

		if errors.Is(err, models.ErrSongNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, models.ErrSongNotFound)
		}

		c.Logger().Error(err)
		return err
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "Music added to user's library successfully"})
}

func (app *Application) HandleGetProfile(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err)
	}

	profile, err := app.GetUserProfile(userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, models.ErrUserNotFound)
		}

		c.Logger().Error(err)
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

func (app *Application) HandleListMusica(c echo.Context) error {
	songs, err := app.ListSongs()
	if err != nil {
		c.Logger().Error(err)
		return err
	}

	return c.JSON(http.StatusOK, songs)
}

func (app *Application) HandleCreateMusica(c echo.Context) error {
	var req models.CreateSongRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidRequest)
	}

	if req.Titulo == "" || req.Artista == "" {
		return echo.NewHTTPError(http.StatusBadRequest, models.ErrInvalidRequest)
	}

	song, err := app.CreateSong(req.Titulo, req.Artista)
	if err != nil {
		c.Logger().Error(err)
		return err
	}

	return c.JSON(http.StatusCreated, song)
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, models.ErrInvalidID
	}

	return uint(id), nil
}
