package order

import (
	"testing"

	"fibra_vendas/internal/domain/entities"
)

// readyDraft builds a draft that satisfies every advance precondition up to
// the review step.
func readyDraft() entities.OrderDraft {
	d := entities.NewOrderDraft()
	d = Reduce(d, SetContactInfo{Celular: "(11) 98888-7777"})
	d = Reduce(d, SetAddress{Address: entities.Address{Logradouro: "Avenida Paulista", Numero: "1000", Cidade: "São Paulo"}})
	d = Reduce(d, SetPlan{Plan: turboPlan()})
	d = Reduce(d, ToggleApp{App: app("netflix")})
	d = Reduce(d, ToggleApp{App: app("disney")})
	d = Reduce(d, SetAnalysis{Status: entities.AnalysisApproved})

	nome, email, nasc, tel := "Maria Silva", "maria@example.com", "1990-01-01", "(11) 3333-4444"
	d = Reduce(d, SetCustomer{Patch: entities.CustomerPatch{Nome: &nome, Email: &email, DataNascimento: &nasc, Telefone: &tel}})
	d = Reduce(d, SetScheduling{Scheduling: entities.Scheduling{Date: "2026-09-10", TimeID: "2", TimeLabel: "10:00 - 12:00"}})
	d = Reduce(d, SetPayment{Method: entities.PaymentBoleto, DueDate: "10"})
	return d
}

func TestGateFlags(t *testing.T) {
	d := entities.NewOrderDraft()
	d.Step = 3

	for step := 1; step <= 5; step++ {
		active := IsActive(d, step)
		completed := IsCompleted(d, step)
		locked := IsLocked(d, step)

		if (active && completed) || (active && locked) || (completed && locked) {
			t.Fatalf("step %d: flags not mutually exclusive", step)
		}
		if step < 3 && !completed {
			t.Fatalf("step %d: expected completed", step)
		}
		if step == 3 && !active {
			t.Fatal("step 3: expected active")
		}
		if step > 3 && !locked {
			t.Fatalf("step %d: expected locked", step)
		}
	}
}

func TestCanAdvance(t *testing.T) {
	t.Run("step 1 needs phone and viability", func(t *testing.T) {
		d := entities.NewOrderDraft()
		if CanAdvance(d, 1) {
			t.Fatal("expected empty draft blocked")
		}
		d = Reduce(d, SetContactInfo{Celular: "(11) 98888-7777"})
		if CanAdvance(d, 1) {
			t.Fatal("expected blocked without viability")
		}
		d = Reduce(d, SetAddress{Address: entities.Address{Logradouro: "Rua A", Numero: "1", Cidade: "SP"}})
		if !CanAdvance(d, 1) {
			t.Fatal("expected step 1 complete")
		}

		d.Customer.Celular = "(11) 988"
		if CanAdvance(d, 1) {
			t.Fatal("expected short phone blocked")
		}
	})

	t.Run("step 2 needs apps to match the limit exactly", func(t *testing.T) {
		d := entities.NewOrderDraft()
		d = Reduce(d, SetPlan{Plan: turboPlan()})
		if CanAdvance(d, 2) {
			t.Fatal("expected blocked with 0 of 2 apps")
		}
		d = Reduce(d, ToggleApp{App: app("netflix")})
		if CanAdvance(d, 2) {
			t.Fatal("expected blocked with 1 of 2 apps")
		}
		d = Reduce(d, ToggleApp{App: app("disney")})
		if !CanAdvance(d, 2) {
			t.Fatal("expected step 2 complete at exactly the limit")
		}
	})

	t.Run("step 3 needs an approving status", func(t *testing.T) {
		d := entities.NewOrderDraft()
		for status, want := range map[entities.AnalysisStatus]bool{
			entities.AnalysisNone:            false,
			entities.AnalysisPending:         false,
			entities.AnalysisRejected:        false,
			entities.AnalysisApproved:        true,
			entities.AnalysisApprovedWithTax: true,
		} {
			d.AnalysisStatus = status
			if CanAdvance(d, 3) != want {
				t.Fatalf("status %q: expected %t", status, want)
			}
		}
	})

	t.Run("step 4 needs customer, scheduling and payment", func(t *testing.T) {
		d := readyDraft()
		if !CanAdvance(d, 4) {
			t.Fatal("expected complete draft to advance")
		}

		broken := d.Clone()
		broken.PaymentMethod = entities.PaymentNone
		if CanAdvance(broken, 4) {
			t.Fatal("expected blocked without payment method")
		}

		broken = d.Clone()
		broken.Scheduling = nil
		if CanAdvance(broken, 4) {
			t.Fatal("expected blocked without scheduling")
		}

		broken = d.Clone()
		broken.Customer.DataNascimento = ""
		if CanAdvance(broken, 4) {
			t.Fatal("expected blocked without birth date")
		}
	})

	t.Run("review step never advances", func(t *testing.T) {
		if CanAdvance(readyDraft(), 5) {
			t.Fatal("expected no advance from step 5")
		}
	})
}

func TestCanSetStep(t *testing.T) {
	d := readyDraft()
	d.Step = 4

	t.Run("rewind always allowed", func(t *testing.T) {
		for target := 1; target <= 4; target++ {
			if !CanSetStep(d, target) {
				t.Fatalf("expected rewind to %d allowed", target)
			}
		}
	})

	t.Run("forward only one gated step", func(t *testing.T) {
		if !CanSetStep(d, 5) {
			t.Fatal("expected advance 4->5 allowed")
		}

		early := d.Clone()
		early.Step = 2
		if CanSetStep(early, 4) {
			t.Fatal("expected skipping a step rejected")
		}

		blocked := d.Clone()
		blocked.PaymentMethod = entities.PaymentNone
		if CanSetStep(blocked, 5) {
			t.Fatal("expected advance rejected when gate fails")
		}
	})

	t.Run("out of range rejected", func(t *testing.T) {
		if CanSetStep(d, 0) || CanSetStep(d, 6) {
			t.Fatal("expected out-of-range step rejected")
		}
	})
}

func TestCanSubmit(t *testing.T) {
	d := readyDraft()
	d.Step = entities.ReviewStep

	if !CanSubmit(d, true) {
		t.Fatal("expected submit allowed")
	}
	if CanSubmit(d, false) {
		t.Fatal("expected submit blocked without terms")
	}

	d.Step = 4
	if CanSubmit(d, true) {
		t.Fatal("expected submit blocked outside review step")
	}

	d = readyDraft()
	d.Step = entities.ReviewStep
	d.Scheduling = nil
	if CanSubmit(d, true) {
		t.Fatal("expected submit blocked with incomplete contract data")
	}
}
