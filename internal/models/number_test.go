package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNumberUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Number
	}{
		{`2`, 2},
		{`2.5`, 2.5},
		{`"2"`, 2},
		{`" 500 "`, 500},
		{`""`, 0},
		{`null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.in), &n))
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestNumberRejectsText(t *testing.T) {
	var n Number
	assert.Error(t, json.Unmarshal([]byte(`"two"`), &n))
	assert.Error(t, json.Unmarshal([]byte(`true`), &n))
}

func TestPetAcceptsFormValues(t *testing.T) {
	var pet Pet
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Max","age":"0.5"}`), &pet))
	assert.Equal(t, Number(0.5), pet.Age)

	var campaign Donation
	require.NoError(t, json.Unmarshal([]byte(`{"maxAmount":"500"}`), &campaign))
	assert.Equal(t, Number(500), campaign.MaxAmount)

	out, err := json.Marshal(PetUpdate{Age: 2.5})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"age":2.5`)
}

func TestNumberStoredAsDouble(t *testing.T) {
	raw, err := bson.Marshal(Pet{Age: 2.5})
	require.NoError(t, err)

	assert.Equal(t, bson.TypeDouble, bson.Raw(raw).Lookup("age").Type)

	var back Pet
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.Equal(t, Number(2.5), back.Age)
}
