// Package errors provides the structured error type used across rpg-scoundrel.
//
// Every failure carries a Code (transport classification) and, for rule
// violations, a Reason naming the broken rule:
//
//	err := errors.FailedPrecondition("a card was already played this room").
//	    WithReason("SKIP_NOT_ALLOWED").
//	    WithMeta("cards_played", 1)
//
// Wrapping keeps code and reason:
//
//	if err := repo.Update(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to save game")
//	}
//
// Checking:
//
//	errors.GetCode(err)   // CodeFailedPrecondition
//	errors.GetReason(err) // "SKIP_NOT_ALLOWED"
//	errors.Is(err, errors.FailedPrecondition("").WithReason("SKIP_NOT_ALLOWED"))
//
// Config validation uses the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Repo == nil {
//	    vb.RequiredField("Repo")
//	}
//	return vb.Build()
//
// Handlers convert with ToGRPCError; the reason is sent as a
// google.rpc.ErrorInfo detail in ErrorDomain and FromGRPCError restores it on
// the client side.
package errors
