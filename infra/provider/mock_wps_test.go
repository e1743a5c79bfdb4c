package provider_test

import (
	"context"
	"testing"
	"time"

	infraprovider "github.com/peydey/sdk-go/infra/provider"
	"github.com/peydey/sdk-go/pkg/domain"
	"github.com/peydey/sdk-go/pkg/domain/user"
	"github.com/peydey/sdk-go/pkg/domain/withdrawal"
	"github.com/peydey/sdk-go/pkg/money"
	"github.com/peydey/sdk-go/pkg/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() *withdrawal.Request {
	return &withdrawal.Request{
		ID:       "wd_test",
		UserID:   "user_001",
		Amount:   100,
		Type:     "salary",
		Status:   withdrawal.StatusPending,
		Currency: money.AED,
		User: user.Snapshot{
			Name:       "Muhammad Abdul Majid",
			EmiratesID: "784-1968-6570305-0",
			Employer:   "Emirates NBD",
			WPSPartner: "Alfardan Exchange",
		},
	}
}

func TestValidateUser_InvalidMethod(t *testing.T) {
	authority := infraprovider.NewMockWPSAuthority(0)

	result, err := authority.ValidateUser(context.Background(),
		provider.Credentials{Method: "fingerprint", Value: "whorl"}, testRequest())
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, domain.CodeInvalidMethod, result.Code)
}

func TestValidateUser_WrongCredential(t *testing.T) {
	authority := infraprovider.NewMockWPSAuthority(0)

	for _, creds := range []provider.Credentials{
		{Method: provider.MethodPassword, Value: "wrong_password"},
		{Method: provider.MethodPIN, Value: "0000"},
		{Method: provider.MethodEmiratesID, Value: "784-0000-0000000-0"},
	} {
		result, err := authority.ValidateUser(context.Background(), creds, testRequest())
		require.NoError(t, err)
		assert.False(t, result.Success, "method %s", creds.Method)
		assert.Equal(t, domain.CodeValidationFailed, result.Code)
	}
}

func TestValidateUser_Success(t *testing.T) {
	authority := infraprovider.NewMockWPSAuthority(0)

	for _, creds := range []provider.Credentials{
		{Method: provider.MethodPassword, Value: "correct_password"},
		{Method: provider.MethodPIN, Value: "1234"},
		{Method: provider.MethodEmiratesID, Value: "784-1968-6570305-0"},
	} {
		result, err := authority.ValidateUser(context.Background(), creds, testRequest())
		require.NoError(t, err)
		assert.True(t, result.Success, "method %s", creds.Method)
		require.NotNil(t, result.Eligibility)
		assert.True(t, result.Eligibility.IsEligible)
		assert.InEpsilon(t, 5000.0, result.Eligibility.Limits.DailyLimit, 1e-9)
	}
}

func TestValidateUser_DoesNotMutateRequest(t *testing.T) {
	authority := infraprovider.NewMockWPSAuthority(0)
	req := testRequest()
	before := *req

	_, err := authority.ValidateUser(context.Background(),
		provider.Credentials{Method: provider.MethodPIN, Value: "1234"}, req)
	require.NoError(t, err)
	assert.Equal(t, before, *req)
}

func TestValidateUser_HonorsCancellation(t *testing.T) {
	authority := infraprovider.NewMockWPSAuthority(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := authority.ValidateUser(ctx,
		provider.Credentials{Method: provider.MethodPIN, Value: "1234"}, testRequest())
	require.ErrorIs(t, err, context.Canceled)
}

func TestProcessWithdrawal_RefusesFailedValidation(t *testing.T) {
	authority := infraprovider.NewMockWPSAuthority(0)

	result, err := authority.ProcessWithdrawal(context.Background(), testRequest(),
		&provider.ValidationResult{Success: false})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, domain.CodeValidationFailed, result.Code)
	assert.Nil(t, result.Receipt)
}

func TestProcessWithdrawal_Success(t *testing.T) {
	authority := infraprovider.NewMockWPSAuthority(0)
	req := testRequest()

	result, err := authority.ProcessWithdrawal(context.Background(), req,
		&provider.ValidationResult{Success: true})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, withdrawal.StatusCompleted, result.Status)
	assert.NotEmpty(t, result.TransactionID)

	receipt := result.Receipt
	require.NotNil(t, receipt)
	assert.NotEmpty(t, receipt.ReceiptNumber)
	assert.InEpsilon(t, 100.0, receipt.Amount, 1e-9)
	assert.Equal(t, money.AED, receipt.Currency)
	assert.Equal(t, "Muhammad Abdul Majid", receipt.User)
	assert.Equal(t, "Emirates NBD", receipt.Employer)
	assert.Equal(t, withdrawal.StatusCompleted, receipt.Status)
}

func TestProcessWithdrawal_DistinctReceiptsPerCall(t *testing.T) {
	authority := infraprovider.NewMockWPSAuthority(0)
	req := testRequest()
	validation := &provider.ValidationResult{Success: true}

	first, err := authority.ProcessWithdrawal(context.Background(), req, validation)
	require.NoError(t, err)
	second, err := authority.ProcessWithdrawal(context.Background(), req, validation)
	require.NoError(t, err)

	// The authority itself applies no guard; dedup is the caller's job.
	assert.NotEqual(t, first.Receipt.ReceiptNumber, second.Receipt.ReceiptNumber)
	assert.NotEqual(t, first.TransactionID, second.TransactionID)
}
