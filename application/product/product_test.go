package product_test

import (
	"context"
	"errors"
	"testing"

	appproduct "github.com/muhammadheryan/stock-ledger/application/product"
	"github.com/muhammadheryan/stock-ledger/constant"
	productmocks "github.com/muhammadheryan/stock-ledger/mocks/repository/product"
	"github.com/muhammadheryan/stock-ledger/model"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestProductApp_ListProducts(t *testing.T) {
	type args struct {
		page    int
		perPage int
	}
	items := []model.Product{{ProductCode: "P-100", Color: "red", ProductName: "Chair"}}

	tests := []struct {
		name     string
		args     args
		mockCall func(repo *productmocks.ProductRepository)
		want     *model.ProductListResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: requested page",
			args: args{page: 2, perPage: 5},
			mockCall: func(repo *productmocks.ProductRepository) {
				repo.On("List", mock.Anything, 2, 5).Return(items, int64(6), nil).Once()
			},
			want: &model.ProductListResponse{Items: items, TotalCount: 6, Page: 2, PerPage: 5},
		},
		{
			name: "success: defaults applied",
			args: args{page: 0, perPage: 0},
			mockCall: func(repo *productmocks.ProductRepository) {
				repo.On("List", mock.Anything, 1, 10).Return(items, int64(1), nil).Once()
			},
			want: &model.ProductListResponse{Items: items, TotalCount: 1, Page: 1, PerPage: 10},
		},
		{
			name: "error: List returns error",
			args: args{page: 1, perPage: 10},
			mockCall: func(repo *productmocks.ProductRepository) {
				repo.On("List", mock.Anything, 1, 10).Return(nil, int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := productmocks.NewProductRepository(t)
			tt.mockCall(repo)
			app := appproduct.NewProductApp(repo)

			got, err := app.ListProducts(context.Background(), tt.args.page, tt.args.perPage)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListProducts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.TotalCount != tt.want.TotalCount || got.Page != tt.want.Page || got.PerPage != tt.want.PerPage || len(got.Items) != len(tt.want.Items) {
				t.Fatalf("ListProducts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
