package guard

import (
	"context"
	"testing"

	"github.com/kbukum/guardkit/errors"
)

func TestViewMethodsSorted(t *testing.T) {
	view := asView(t, New().Proxy(&account{}))
	got := view.Methods()
	want := []string{"Balance", "Deposit", "Owner", "Transfer", "Withdraw"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestViewTypeNameStripsPointer(t *testing.T) {
	view := asView(t, New().Proxy(&account{}))
	if view.TypeName() != "account" {
		t.Fatalf("expected account, got %s", view.TypeName())
	}
}

func TestInvokeUnknownMethod(t *testing.T) {
	view := asView(t, New().Proxy(&account{}))
	_, err := view.Invoke(context.Background(), "Explode")
	if !errors.IsCode(err, errors.ErrCodeNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestInvokeArgCountMismatch(t *testing.T) {
	view := asView(t, New().Proxy(&account{}))
	_, err := view.Invoke(context.Background(), "Deposit")
	if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected invalid-input, got %v", err)
	}
}

func TestInvokeInjectsContext(t *testing.T) {
	view := asView(t, New().Proxy(&account{balance: 10}))
	outs, err := view.Invoke(context.Background(), "Withdraw", 4)
	if err != nil {
		t.Fatalf("Withdraw failed: %v", err)
	}
	if outs[0].(int) != 6 {
		t.Fatalf("expected 6, got %v", outs[0])
	}
}

func TestInvokeSurfacesTargetError(t *testing.T) {
	view := asView(t, New().Proxy(&account{balance: 1}))
	_, err := view.Invoke(context.Background(), "Withdraw", 100)
	if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected target error through, got %v", err)
	}
}

func TestInvokeUnwrapsViewArguments(t *testing.T) {
	f := New()
	from := &account{balance: 10}
	to := &account{}
	fromView := asView(t, f.Proxy(from))
	toView := asView(t, f.Proxy(to))

	if _, err := fromView.Invoke(context.Background(), "Transfer", toView, 4); err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}
	if to.balance != 4 || from.balance != 6 {
		t.Fatalf("expected 6/4, got %d/%d", from.balance, to.balance)
	}
}

func TestViewFuncRunsChain(t *testing.T) {
	view := asView(t, bankFactory().Proxy(&account{balance: 100}))
	fn, err := view.Func("Withdraw")
	if err != nil {
		t.Fatalf("Func failed: %v", err)
	}
	withdraw, ok := fn.(func(context.Context, int) (int, error))
	if !ok {
		t.Fatalf("expected method func type, got %T", fn)
	}

	if _, err := withdraw(subjectCtx("teller"), 1); !errors.IsDenied(err) {
		t.Fatalf("expected denial, got %v", err)
	}
	got, err := withdraw(subjectCtx("manager"), 25)
	if err != nil || got != 75 {
		t.Fatalf("expected 75, got %v (err %v)", got, err)
	}
}

func TestViewTargetAndString(t *testing.T) {
	a := &account{}
	view := asView(t, New().Proxy(a))
	if view.Target() != any(a) {
		t.Fatal("Target should return the unwrapped value")
	}
	if view.String() != "guard.View(account)" {
		t.Fatalf("unexpected String: %s", view.String())
	}
}
