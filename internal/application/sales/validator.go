package sales

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hugohenrick/vendas-api/pkg/apperror"
)

var validate = validator.New()

// validateCommand executa as regras declarativas do comando e agrega
// todas as violações em um único ValidationError. Nenhum handler toca
// o agregado antes desta etapa.
func validateCommand(cmd interface{}) error {
	err := validate.Struct(cmd)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return apperror.NewUnexpected(err)
	}

	messages := make([]string, 0, len(violations))
	for _, violation := range violations {
		messages = append(messages, violationMessage(violation))
	}

	return apperror.NewValidation(messages...)
}

// violationMessage traduz uma violação para uma mensagem legível
func violationMessage(v validator.FieldError) string {
	field := fieldLabel(v)

	switch v.Tag() {
	case "required":
		return fmt.Sprintf("o campo %s é obrigatório", field)
	case "uuid":
		return fmt.Sprintf("o campo %s deve ser um UUID válido", field)
	case "gt":
		return fmt.Sprintf("o campo %s deve ser maior que %s", field, v.Param())
	case "min":
		return fmt.Sprintf("o campo %s deve ter ao menos %s item(ns)", field, v.Param())
	default:
		return fmt.Sprintf("o campo %s é inválido", field)
	}
}

// fieldLabel devolve o caminho do campo sem o nome do comando
func fieldLabel(v validator.FieldError) string {
	parts := strings.SplitN(v.Namespace(), ".", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return v.Field()
}
