package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/whitemassif/website/internal/cms"
	"github.com/whitemassif/website/internal/form"
)

type smokeCase struct {
	name   string
	typ    form.Type
	fields form.Fields
}

func smokeCases(now time.Time) []smokeCase {
	return []smokeCase{
		{
			name: "contact",
			typ:  form.TypeContact,
			fields: form.Fields{
				"name":      "Smoke Test Contact",
				"email":     "smoke.contact@example.com",
				"phone":     "+91 98765 43210",
				"company":   "Smoke Test Corp",
				"eventType": "Corporate Event",
				"eventDate": now.AddDate(0, 1, 0).Format("2006-01-02"),
				"location":  "Bangalore",
				"message":   "Automated contact form check.",
				"source":    "contact-page",
			},
		},
		{
			name: "enquiry",
			typ:  form.TypeEnquiry,
			fields: form.Fields{
				"name":    "Smoke Test Enquiry",
				"email":   "smoke.enquiry@example.com",
				"phone":   "9876543210",
				"message": "Automated enquiry popup check.",
				"source":  "enquiry-popup",
			},
		},
		{
			name: "newsletter",
			typ:  form.TypeNewsletter,
			fields: form.Fields{
				"email":  fmt.Sprintf("newsletter+%d@example.com", now.Unix()),
				"source": "footer-newsletter",
			},
		},
		{
			name: "feedback",
			typ:  form.TypeFeedback,
			fields: form.Fields{
				"name":          "Smoke Test Feedback",
				"email":         form.DefaultFeedbackEmail,
				"overallRating": 5,
				"comments":      "Automated feedback check.",
				"source":        "feedback-page",
			},
		},
		{
			name: "landing",
			typ:  form.TypeLanding,
			fields: form.Fields{
				"name":    "Smoke Test Landing",
				"email":   "smoke.landing@example.com",
				"phone":   "+919876543210",
				"company": "Smoke Test Corp",
				"source":  "landing-page",
			},
		},
	}
}

func smokeFormsCmd() *cobra.Command {
	var (
		endpoint string
		verify   bool
	)

	c := &cobra.Command{
		Use:   "smoke-forms",
		Short: "Submit one sample of each form type to a running site",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var reader *cms.Client
			if verify {
				var err error
				if reader, err = newCMS(); err != nil {
					return err
				}
			}

			client := form.NewClient(endpoint)
			w := cmd.OutOrStdout()
			failed := 0
			for _, sc := range smokeCases(time.Now()) {
				resp := client.Submit(cmd.Context(), sc.typ, sc.fields)
				if !resp.Success {
					failed++
					fmt.Fprintf(w, "[FAIL] %s: %s\n", sc.name, resp.Message)
					continue
				}
				fmt.Fprintf(w, "[ok] %s: id=%v (%s)\n", sc.name, resp.ID, resp.Notice)

				if reader == nil {
					continue
				}
				if err := verifyStored(cmd.Context(), reader, sc.typ, resp.ID); err != nil {
					failed++
					fmt.Fprintf(w, "[FAIL] %s not readable from cms: %v\n", sc.name, err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d form check(s) failed", failed)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&endpoint, "endpoint", "e", "http://localhost:8080/api/submit-form", "Form submission URL")
	c.Flags().BoolVar(&verify, "verify", false, "Read every created row back from the CMS")
	return c
}

func verifyStored(ctx context.Context, c *cms.Client, t form.Type, id any) error {
	if id == nil {
		return fmt.Errorf("no id returned")
	}
	var row map[string]any
	if err := c.Item(ctx, form.Rules[t].Collection, id, &row); err != nil {
		return err
	}
	if len(row) == 0 {
		return fmt.Errorf("empty row")
	}
	return nil
}
