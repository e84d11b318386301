package validator

import (
	"ctchen222/Tic-Tac-Toe-Solo/pkg/proto"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(clientMessageValidation, proto.ClientToServerMessage{})
}

func GetValidator() *validator.Validate {
	return validate
}

// clientMessageValidation requires a move to carry exactly a row and a
// column. Range checks are left to the game so every out-of-range move is
// reported the same way.
func clientMessageValidation(sl validator.StructLevel) {
	msg := sl.Current().Interface().(proto.ClientToServerMessage)
	if msg.Type == proto.TypeMove && len(msg.Position) != 2 {
		sl.ReportError(msg.Position, "Position", "position", "position", "")
	}
}
