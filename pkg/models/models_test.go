package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shaksmhd/fintech/pkg/models"
)

func TestDisplayName(t *testing.T) {
	t.Run("All Parts", func(t *testing.T) {
		a := &models.Account{FirstName: "Ada", LastName: "Obi", OtherName: "Ngozi"}
		assert.Equal(t, "Ada Obi Ngozi", a.DisplayName())
	})

	t.Run("No Other Name", func(t *testing.T) {
		a := &models.Account{FirstName: "Ada", LastName: "Obi"}
		assert.Equal(t, "Ada Obi", a.DisplayName())
	})

	t.Run("Empty", func(t *testing.T) {
		a := &models.Account{}
		assert.Equal(t, "", a.DisplayName())
	})
}

func TestLoanStatusValid(t *testing.T) {
	for _, status := range []models.LoanStatus{
		models.LoanApplied, models.LoanApproved, models.LoanRejected, models.LoanRepaid,
	} {
		assert.True(t, status.Valid(), "expected %s to be valid", status)
	}

	assert.False(t, models.LoanStatus("").Valid())
	assert.False(t, models.LoanStatus("applied").Valid())
	assert.False(t, models.LoanStatus("SETTLED").Valid())
}
