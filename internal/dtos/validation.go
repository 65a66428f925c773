package dtos

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Leganyst/room-booking/internal/calendar"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(calendar.ISODate, strings.TrimSpace(fl.Field().String()))
		return err == nil
	})
	_ = v.RegisterValidation("slotcode", func(fl validator.FieldLevel) bool {
		return calendar.IsSlotCode(fl.Field().String())
	})
	return v
}

// FieldError is one failed rule, already phrased for people.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every failed field at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages(), "; ")
}

func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Message)
	}
	return out
}

// Validate checks every field and reports all failures together. It returns
// nil when the draft is complete.
func (d BookingDraft) Validate() error {
	return collect(validate.Struct(d))
}

func (p BookingPatch) Validate() error {
	if p.Empty() {
		return &ValidationError{Fields: []FieldError{{Field: "", Message: "Nada para atualizar"}}}
	}
	return collect(validate.Struct(p))
}

func collect(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "descricao":
		if fe.Tag() == "max" {
			return "Descrição muito longa"
		}
		return "Descrição é obrigatória"
	case "sala_id":
		if fe.Tag() == "max" {
			return "Identificador da sala muito longo"
		}
		return "Sala é obrigatória"
	case "data":
		if fe.Tag() == "isodate" {
			return "Data deve estar no formato AAAA-MM-DD"
		}
		return "Data é obrigatória"
	case "turno":
		if fe.Tag() == "slotcode" {
			return "Turno deve ser A, B, C, D ou E"
		}
		return "Turno é obrigatório"
	case "horario":
		return "Horário muito longo"
	default:
		return fe.Field() + " inválido"
	}
}
