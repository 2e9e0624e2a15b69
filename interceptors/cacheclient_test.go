package interceptors

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/futurity-ai/fastcache"
	"github.com/futurity-ai/fastcache/store"
)

func testCache(t *testing.T) *fastcache.Cache {
	t.Helper()
	return fastcache.New(store.NewMemory(), fastcache.WithRegistry(fastcache.Registry{
		"workspace": fastcache.DefaultRegistry()["workspace"],
	}))
}

// cacheWorkspace caches every call under the workspace category.
func cacheWorkspace(method string, _ any) (string, string, bool) {
	return "workspace", method, true
}

func TestUnaryClientCache_ServesSecondCallFromCache(t *testing.T) {
	c := testCache(t)
	ic := UnaryClientCache(c, cacheWorkspace)

	var calls atomic.Int32
	invoker := func(_ context.Context, _ string, _, reply any, _ *grpc.ClientConn, _ ...grpc.CallOption) error {
		calls.Add(1)
		reply.(*wrapperspb.StringValue).Value = "from upstream"
		return nil
	}

	for i := 0; i < 2; i++ {
		reply := &wrapperspb.StringValue{}
		if err := ic(t.Context(), "/fast.Workspace/Get", &wrapperspb.StringValue{}, reply, nil, invoker); err != nil {
			t.Fatalf("call %d: %v", i+1, err)
		}
		if reply.Value != "from upstream" {
			t.Fatalf("call %d: reply = %q", i+1, reply.Value)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("invoker called %d times, want 1", n)
	}
}

func TestUnaryClientCache_BypassesUncacheableCalls(t *testing.T) {
	c := testCache(t)
	ic := UnaryClientCache(c, func(string, any) (string, string, bool) {
		return "", "", false
	})

	var calls atomic.Int32
	invoker := func(_ context.Context, _ string, _, reply any, _ *grpc.ClientConn, _ ...grpc.CallOption) error {
		calls.Add(1)
		reply.(*wrapperspb.StringValue).Value = "fresh"
		return nil
	}

	for i := 0; i < 2; i++ {
		reply := &wrapperspb.StringValue{}
		if err := ic(t.Context(), "/fast.Workspace/Get", nil, reply, nil, invoker); err != nil {
			t.Fatalf("call %d: %v", i+1, err)
		}
	}
	if n := calls.Load(); n != 2 {
		t.Fatalf("invoker called %d times, want 2 (cache bypassed)", n)
	}
}

func TestUnaryClientCache_ErrorsAreNotCached(t *testing.T) {
	c := testCache(t)
	ic := UnaryClientCache(c, cacheWorkspace)

	sentinel := errors.New("unavailable")
	var calls atomic.Int32
	invoker := func(_ context.Context, _ string, _, _ any, _ *grpc.ClientConn, _ ...grpc.CallOption) error {
		calls.Add(1)
		return sentinel
	}

	for i := 0; i < 2; i++ {
		reply := &wrapperspb.StringValue{}
		if err := ic(t.Context(), "/fast.Workspace/Get", nil, reply, nil, invoker); !errors.Is(err, sentinel) {
			t.Fatalf("call %d: got %v, want sentinel", i+1, err)
		}
	}
	if n := calls.Load(); n != 2 {
		t.Fatalf("invoker called %d times, want 2 (failures never cached)", n)
	}
}
