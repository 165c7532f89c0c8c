package workerpool

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestMap(t *testing.T) {
	type args struct {
		ctx         context.Context
		workerCount int
		items       []int
		fn          func(context.Context, int) (int, error)
	}
	tests := []struct {
		name    string
		args    args
		want    []int
		wantErr error
	}{
		{
			name: "results keep input order",
			args: args{
				ctx:         context.Background(),
				workerCount: 3,
				items:       []int{1, 2, 3, 4, 5},
				fn: func(_ context.Context, v int) (int, error) {
					return v * v, nil
				},
			},
			want: []int{1, 4, 9, 16, 25},
		},
		{
			name: "single worker floor",
			args: args{
				ctx:         context.Background(),
				workerCount: 0,
				items:       []int{7},
				fn: func(_ context.Context, v int) (int, error) {
					return v + 1, nil
				},
			},
			want: []int{8},
		},
		{
			name: "empty input",
			args: args{
				ctx:         context.Background(),
				workerCount: 2,
				items:       nil,
				fn: func(_ context.Context, v int) (int, error) {
					return v, nil
				},
			},
			want: []int{},
		},
		{
			name: "error stops the pool",
			args: args{
				ctx:         context.Background(),
				workerCount: 2,
				items:       []int{1, 2, 3},
				fn: func(_ context.Context, v int) (int, error) {
					if v == 2 {
						return 0, errors.New("boom")
					}
					return v, nil
				},
			},
			wantErr: errors.New("boom"),
		},
		{
			name: "canceled context",
			args: args{
				ctx: func() context.Context {
					ctx, cancel := context.WithCancel(context.Background())
					cancel()
					return ctx
				}(),
				workerCount: 2,
				items:       []int{1, 2},
				fn: func(_ context.Context, v int) (int, error) {
					return v, nil
				},
			},
			wantErr: context.Canceled,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Map(tt.args.ctx, tt.args.workerCount, tt.args.items, tt.args.fn)
			if (err != nil) != (tt.wantErr != nil) {
				t.Fatalf("Map() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if err.Error() != tt.wantErr.Error() {
					t.Fatalf("Map() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Map() returned %d results, want %d", len(got), len(tt.want))
			}
			if len(tt.want) > 0 && !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Map() = %v, want %v", got, tt.want)
			}
		})
	}
}
