package cnst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageConstants(t *testing.T) {
	assert.Equal(t, "vi", LangVI)
	assert.Equal(t, "en", LangEN)
	assert.Equal(t, LangVI, LangDefault)
	assert.Equal(t, "X-Lang", XLang)
}

func TestActionType_String(t *testing.T) {
	assert.Equal(t, "create_contract", ActionCreateContract.String())
	assert.Equal(t, "confirm_payment", ActionConfirmPayment.String())
}
