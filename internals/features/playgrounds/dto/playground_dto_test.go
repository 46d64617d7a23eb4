package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"markazy_backend/internals/features/playgrounds/model"
)

func TestCreateRequestNormalizeAppliesContactDefault(t *testing.T) {
	req := CreatePlaygroundRequest{Name: " ملعب الأهلي ", Location: " مدينة نصر "}
	req.Normalize()

	assert.Equal(t, "ملعب الأهلي", req.Name)
	assert.Equal(t, "مدينة نصر", req.Location)
	assert.Equal(t, model.DefaultContact, req.Contact)
}

func TestCreateRequestNormalizeKeepsContact(t *testing.T) {
	req := CreatePlaygroundRequest{Name: "a", Location: "b", Contact: " 01012345678 "}
	req.Normalize()
	assert.Equal(t, "01012345678", req.Contact)
}

func TestPairKey(t *testing.T) {
	assert.Equal(t, PairKey("Stadium", "Cairo"), PairKey("stadium", "CAIRO"))
	assert.NotEqual(t, PairKey("Stadium", "Cairo"), PairKey("Stadium", "Giza"))
}
