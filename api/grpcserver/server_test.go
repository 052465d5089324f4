package grpcserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"crux/api/pb"
	"crux/domain/book"
	"crux/infra/sequence"
	"crux/service"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	svc := service.NewEngine(book.NewOrderBook(), sequence.New(0), nil, zap.NewNop())
	return NewServer(svc)
}

func TestPlaceOrderAndMatch(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	resp, err := srv.PlaceOrder(ctx, &pb.PlaceOrderRequest{
		Side: pb.Side_SIDE_BUY, Symbol: "AA", Qty: 10, Price: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp.SeqId)

	_, err = srv.PlaceOrder(ctx, &pb.PlaceOrderRequest{
		Side: pb.Side_SIDE_SELL, Symbol: "AA", Qty: 10, Price: 90,
	})
	require.NoError(t, err)

	match, err := srv.Match(ctx, &pb.MatchRequest{})
	require.NoError(t, err)
	require.Len(t, match.Executions, 1)
	assert.Equal(t, int64(10), match.Executions[0].Qty)
	assert.Equal(t, 100.0, match.Executions[0].BuyPrice)
	assert.Equal(t, 90.0, match.Executions[0].SellPrice)
}

func TestPlaceOrderInvalidArgument(t *testing.T) {
	srv := newTestServer(t)

	_, err := srv.PlaceOrder(context.Background(), &pb.PlaceOrderRequest{
		Side: pb.Side_SIDE_BUY, Symbol: "AA", Qty: 0, Price: 100,
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetDepthUnknownSymbol(t *testing.T) {
	srv := newTestServer(t)

	_, err := srv.GetDepth(context.Background(), &pb.DepthRequest{Symbol: "ZZ"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGetDepthNegativeMaxLevels(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	_, err := srv.PlaceOrder(ctx, &pb.PlaceOrderRequest{
		Side: pb.Side_SIDE_BUY, Symbol: "AA", Qty: 1, Price: 100,
	})
	require.NoError(t, err)

	_, err = srv.GetDepth(ctx, &pb.DepthRequest{Symbol: "AA", MaxLevels: -1})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetDepthLevels(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	for _, o := range []*pb.PlaceOrderRequest{
		{Side: pb.Side_SIDE_BUY, Symbol: "AA", Qty: 5, Price: 100},
		{Side: pb.Side_SIDE_BUY, Symbol: "AA", Qty: 3, Price: 100},
		{Side: pb.Side_SIDE_SELL, Symbol: "AA", Qty: 2, Price: 105},
	} {
		_, err := srv.PlaceOrder(ctx, o)
		require.NoError(t, err)
	}

	resp, err := srv.GetDepth(ctx, &pb.DepthRequest{Symbol: "AA"})
	require.NoError(t, err)
	require.Len(t, resp.Bids, 1)
	assert.Equal(t, int64(8), resp.Bids[0].Qty)
	require.Len(t, resp.Asks, 1)
	assert.Equal(t, 105.0, resp.Asks[0].Price)
}
