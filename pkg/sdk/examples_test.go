package sdk_test

import (
	"context"
	"fmt"

	infraprovider "github.com/peydey/sdk-go/infra/provider"
	"github.com/peydey/sdk-go/pkg/config"
	"github.com/peydey/sdk-go/pkg/provider"
	"github.com/peydey/sdk-go/pkg/sdk"
)

// Example walks the full early-access flow: onboard, check details,
// calculate fees, withdraw, drive the WPS callbacks, report completion
// and exit.
func Example() {
	s := sdk.New(
		config.Default(),
		infraprovider.NewMockDirectory(0),
		infraprovider.NewMockWPSAuthority(0),
		nil,
	)
	ctx := context.Background()

	onboarding := s.OnboardUser(ctx, provider.LookupCredentials{
		EmiratesID:  "784-1968-6570305-0",
		PhoneNumber: "+971523213841",
	})
	fmt.Println("onboarded:", onboarding.User.Name)

	details := s.GetUserDetails()
	fmt.Println("available balance:", details.Limits.AvailableBalance)
	fmt.Println("can proceed:", details.CanProceed)

	fees := s.CalculateWithdrawalFees(100)
	fmt.Println("you receive:", fees.Fees.YouReceive)

	withdraw := s.HandleWithdrawalRequest(100, "salary")
	validation, _ := withdraw.Handle.ValidateUser(ctx, provider.Credentials{
		Method: provider.MethodEmiratesID,
		Value:  "784-1968-6570305-0",
	})
	processing, _ := withdraw.Handle.ProcessWithdrawal(ctx, validation)
	fmt.Println("processed:", processing.Success, processing.Receipt.Currency)

	complete := s.CompleteWithdrawal(withdraw.Request.ID, processing)
	fmt.Println("recorded:", complete.Entry.Status)

	fmt.Println("exited:", s.ExitSDK().Success)

	// Output:
	// onboarded: Muhammad Abdul Majid
	// available balance: 375
	// can proceed: true
	// you receive: 94.75
	// processed: true AED
	// recorded: completed
	// exited: true
}
