package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestMergeMembershipShallow(t *testing.T) {
	current := Membership{
		FatherIDImage:         "https://cdn.example/father.jpg",
		BirthCertificateImage: "https://cdn.example/birth.jpg",
		PersonalPhotos:        []string{"p1.jpg", "p2.jpg"},
		Phone:                 "01012345678",
		FirstTimePrice:        floatPtr(200),
		RenewalPrice:          floatPtr(100),
	}

	merged := MergeMembership(current, MembershipPatch{
		FirstTimePrice: floatPtr(250),
	})

	// The named field changed.
	require.NotNil(t, merged.FirstTimePrice)
	assert.Equal(t, 250.0, *merged.FirstTimePrice)

	// Every sibling survived untouched.
	assert.Equal(t, current.FatherIDImage, merged.FatherIDImage)
	assert.Equal(t, current.BirthCertificateImage, merged.BirthCertificateImage)
	assert.Equal(t, current.PersonalPhotos, merged.PersonalPhotos)
	assert.Equal(t, current.Phone, merged.Phone)
	require.NotNil(t, merged.RenewalPrice)
	assert.Equal(t, 100.0, *merged.RenewalPrice)
}

func TestMergeMembershipMultipleFields(t *testing.T) {
	current := Membership{Phone: "01000000000", UtilityBillImage: "bill.jpg"}

	merged := MergeMembership(current, MembershipPatch{
		Phone:          strPtr("01111111111"),
		PersonalPhotos: &[]string{"new.jpg"},
	})

	assert.Equal(t, "01111111111", merged.Phone)
	assert.Equal(t, []string{"new.jpg"}, merged.PersonalPhotos)
	assert.Equal(t, "bill.jpg", merged.UtilityBillImage)
}

func TestMergeMembershipEmptyPatchIsNoop(t *testing.T) {
	current := Membership{Phone: "01012345678", FirstTimePrice: floatPtr(50)}
	merged := MergeMembership(current, MembershipPatch{})
	assert.Equal(t, current, merged)
}

func TestMergeMembershipCanBlankField(t *testing.T) {
	current := Membership{Phone: "01012345678"}
	merged := MergeMembership(current, MembershipPatch{Phone: strPtr("")})
	assert.Empty(t, merged.Phone)
}

func TestDecodeMembership(t *testing.T) {
	m, err := DecodeMembership(nil)
	require.NoError(t, err)
	assert.True(t, m.IsZero())

	raw, _ := json.Marshal(Membership{Phone: "01012345678"})
	m, err = DecodeMembership(raw)
	require.NoError(t, err)
	assert.False(t, m.IsZero())
	assert.Equal(t, "01012345678", m.Phone)

	_, err = DecodeMembership([]byte("{not json"))
	assert.Error(t, err)
}

func TestMembershipIsZero(t *testing.T) {
	assert.True(t, Membership{}.IsZero())
	assert.False(t, Membership{Phone: "x"}.IsZero())
	assert.False(t, Membership{FirstTimePrice: floatPtr(0)}.IsZero())
	assert.False(t, Membership{PersonalPhotos: []string{"a"}}.IsZero())
}
