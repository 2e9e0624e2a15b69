// Package interceptors provides gRPC client middleware that serves unary
// responses out of a fastcache.Cache.
package interceptors

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"

	"github.com/futurity-ai/fastcache"
)

// KeyFunc maps an outgoing unary call to a cache category and identifier.
// Returning ok=false bypasses the cache for that call.
type KeyFunc func(method string, req any) (category, identifier string, ok bool)

// cachedReply carries the proto wire bytes of a reply inside the cache
// envelope. encoding/json base64-encodes the byte slice.
type cachedReply struct {
	Payload []byte `json:"payload"`
}

// UnaryClientCache returns a [grpc.UnaryClientInterceptor] that consults c
// before invoking the RPC and stores successful replies back under the
// category and identifier chosen by key. Only replies implementing
// [proto.Message] are cacheable; everything else passes through, and
// failed RPCs are never cached.
func UnaryClientCache(c *fastcache.Cache, key KeyFunc) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		category, identifier, ok := key(method, req)
		if !ok {
			return invoker(ctx, method, req, reply, cc, opts...)
		}
		msg, ok := reply.(proto.Message)
		if !ok {
			return invoker(ctx, method, req, reply, cc, opts...)
		}

		if cached, ok := fastcache.Get[cachedReply](ctx, c, category, identifier); ok {
			if err := proto.Unmarshal(cached.Payload, msg); err == nil {
				return nil
			}
			// Undecodable payload — fall through to the real call.
		}

		if err := invoker(ctx, method, req, reply, cc, opts...); err != nil {
			return err
		}
		if payload, err := proto.Marshal(msg); err == nil {
			c.Set(ctx, category, identifier, cachedReply{Payload: payload})
		}
		return nil
	}
}
