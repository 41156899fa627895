package basehdl

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"github.com/qurriahSam/elewa/internal/common"
	"github.com/qurriahSam/elewa/internal/global"
)

// ParseRequestBody parse request body thành struct và validate theo các tag
// validate của struct đó.
func ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	if len(body) > 0 {
		reader := bytes.NewReader(body)
		decoder := json.NewDecoder(reader)
		decoder.UseNumber()
		if err := decoder.Decode(input); err != nil {
			return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
		}
	}

	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return nil
}
