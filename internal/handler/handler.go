package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/limaJavier/oncall/internal/config"
	"github.com/limaJavier/oncall/pkg/model"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	translator ut.Translator
	scheduler  model.Scheduler

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		translator: trans,
		scheduler:  model.NewScheduler(),

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/api", func(r chi.Router) {
		r.Get("/healthz", h.Healthz)
		r.Route("/schedules", func(r chi.Router) {
			r.Post("/generate", h.GenerateSchedule)
			r.Post("/validate", h.ValidateSchedule)
		})
	})
}
