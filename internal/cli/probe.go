package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/adyen/ecommerce-e2e/internal/fixtures"
	"github.com/adyen/ecommerce-e2e/internal/storeapi"
	"github.com/adyen/ecommerce-e2e/internal/verify"
)

// ErrProbeFailed is returned by RunProbe when any check fails
var ErrProbeFailed = errors.New("API probe failed")

// ProbeCheck is one API contract check
type ProbeCheck struct {
	Name string
	Run  func(ctx context.Context, client storeapi.Client) error
}

// ProbeResult is the outcome of one check
type ProbeResult struct {
	Name string
	Err  error
}

// Passed reports whether the check held
func (r ProbeResult) Passed() bool {
	return r.Err == nil
}

// ProbeChecks returns the API contract checks. creds must be a registered
// account on the target.
func ProbeChecks(creds fixtures.LoginCredentials) []ProbeCheck {
	return []ProbeCheck{
		{"GET productsList returns products", func(ctx context.Context, c storeapi.Client) error {
			resp, err := c.ProductsList(ctx)
			if err != nil {
				return err
			}
			return verify.AssertAPIProductsList(resp)
		}},
		{"POST productsList is not supported", func(ctx context.Context, c storeapi.Client) error {
			resp, err := c.Do(ctx, http.MethodPost, storeapi.PathProductsList, nil)
			if err != nil {
				return err
			}
			return verify.AssertAPIMethodNotSupported(resp)
		}},
		{"GET brandsList returns brands", func(ctx context.Context, c storeapi.Client) error {
			resp, err := c.BrandsList(ctx)
			if err != nil {
				return err
			}
			return verify.AssertAPIBrandsList(resp)
		}},
		{"PUT brandsList is not supported", func(ctx context.Context, c storeapi.Client) error {
			resp, err := c.Do(ctx, http.MethodPut, storeapi.PathBrandsList, nil)
			if err != nil {
				return err
			}
			return verify.AssertAPIMethodNotSupported(resp)
		}},
		{"POST searchProduct finds matches", func(ctx context.Context, c storeapi.Client) error {
			term := fixtures.APIProductSearch().SearchProduct
			resp, err := c.SearchProduct(ctx, term)
			if err != nil {
				return err
			}
			return verify.AssertAPISearchResults(resp, term)
		}},
		{"POST searchProduct without term is rejected", func(ctx context.Context, c storeapi.Client) error {
			resp, err := c.SearchProduct(ctx, "")
			if err != nil {
				return err
			}
			return verify.AssertAPIBadRequest(resp, storeapi.MsgSearchParamMissing)
		}},
		{"POST verifyLogin accepts valid credentials", func(ctx context.Context, c storeapi.Client) error {
			resp, err := c.VerifyLogin(ctx, creds.Email, creds.Password)
			if err != nil {
				return err
			}
			return verify.AssertAPIUserExists(resp)
		}},
		{"POST verifyLogin without email is rejected", func(ctx context.Context, c storeapi.Client) error {
			resp, err := c.Do(ctx, http.MethodPost, storeapi.PathVerifyLogin, map[string]string{"password": creds.Password})
			if err != nil {
				return err
			}
			return verify.AssertAPIBadRequest(resp, storeapi.MsgLoginParamsMissing)
		}},
		{"DELETE verifyLogin is not supported", func(ctx context.Context, c storeapi.Client) error {
			resp, err := c.Do(ctx, http.MethodDelete, storeapi.PathVerifyLogin, nil)
			if err != nil {
				return err
			}
			return verify.AssertAPIMethodNotSupported(resp)
		}},
		{"POST verifyLogin rejects unknown credentials", func(ctx context.Context, c storeapi.Client) error {
			bad := fixtures.APIInvalidLoginCredentials()
			resp, err := c.VerifyLogin(ctx, bad.Email, bad.Password)
			if err != nil {
				return err
			}
			return verify.AssertAPIUserNotFound(resp)
		}},
		{"account lifecycle: create, read, update, delete", accountLifecycle},
	}
}

func accountLifecycle(ctx context.Context, c storeapi.Client) error {
	account := fixtures.APIUserAccount()
	form := account.Form()

	resp, err := c.CreateAccount(ctx, form)
	if err != nil {
		return err
	}
	if err := verify.AssertAPIUserCreated(resp); err != nil {
		return fmt.Errorf("create: %w", err)
	}

	resp, err = c.CreateAccount(ctx, form)
	if err != nil {
		return err
	}
	if err := verify.AssertAPIBadRequest(resp, storeapi.MsgEmailExists); err != nil {
		return fmt.Errorf("duplicate create: %w", err)
	}

	resp, err = c.UserDetailByEmail(ctx, account.Email)
	if err != nil {
		return err
	}
	if err := verify.AssertAPIUserDetail(resp, account.Email); err != nil {
		return fmt.Errorf("detail: %w", err)
	}

	form["city"] = "San Francisco"
	resp, err = c.UpdateAccount(ctx, form)
	if err != nil {
		return err
	}
	if err := verify.AssertAPIUserUpdated(resp); err != nil {
		return fmt.Errorf("update: %w", err)
	}

	resp, err = c.DeleteAccount(ctx, account.Email, account.Password)
	if err != nil {
		return err
	}
	if err := verify.AssertAPIAccountDeleted(resp); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	resp, err = c.VerifyLogin(ctx, account.Email, account.Password)
	if err != nil {
		return err
	}
	if err := verify.AssertAPIUserNotFound(resp); err != nil {
		return fmt.Errorf("login after delete: %w", err)
	}
	return nil
}

// RunProbe runs every check against client, printing one PASS or FAIL line
// per check to out. It returns ErrProbeFailed if any check failed.
func RunProbe(ctx context.Context, client storeapi.Client, checks []ProbeCheck, out io.Writer, logger *zap.Logger) ([]ProbeResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]ProbeResult, 0, len(checks))
	failed := 0
	for _, check := range checks {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		err := check.Run(ctx, client)
		results = append(results, ProbeResult{Name: check.Name, Err: err})
		if err != nil {
			failed++
			logger.Warn("probe check failed", zap.String("check", check.Name), zap.Error(err))
			fmt.Fprintf(out, "FAIL  %s: %v\n", check.Name, err)
			continue
		}
		fmt.Fprintf(out, "PASS  %s\n", check.Name)
	}

	fmt.Fprintf(out, "\n%d/%d checks passed\n", len(checks)-failed, len(checks))
	if failed > 0 {
		return results, fmt.Errorf("%w: %d of %d checks", ErrProbeFailed, failed, len(checks))
	}
	return results, nil
}
