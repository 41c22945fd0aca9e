package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/quickmart-dev/checkout-scheduler/internal/config"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/healthz", h.Health)

	// route names kept from the historical frontend contract
	h.Mux.Post("/generate_clients", h.GenerateClients)
	h.Mux.Post("/solve_problem", h.SolveProblem)
}
