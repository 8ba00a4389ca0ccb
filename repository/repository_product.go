package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/hlubek/stockseed/domain"
)

func InsertProduct(ctx context.Context, runner squirrel.BaseRunner, product domain.Product) error {
	return insertRow(ctx, runner, product)
}

func InsertStockSnapshot(ctx context.Context, runner squirrel.BaseRunner, snapshot domain.StockSnapshot) error {
	return insertRow(ctx, runner, snapshot)
}

func InsertSale(ctx context.Context, runner squirrel.BaseRunner, sale domain.Sale) error {
	return insertRow(ctx, runner, sale)
}

func InsertPurchase(ctx context.Context, runner squirrel.BaseRunner, purchase domain.Purchase) error {
	return insertRow(ctx, runner, purchase)
}

func InsertParameter(ctx context.Context, runner squirrel.BaseRunner, parameter domain.Parameter) error {
	return insertRow(ctx, runner, parameter)
}

func insertQuery(row domain.Row) squirrel.InsertBuilder {
	return squirrel.Insert(row.TableName()).
		Columns(row.Columns()...).
		Values(row.ColumnValues()...).
		PlaceholderFormat(squirrel.Dollar)
}

func insertRow(ctx context.Context, runner squirrel.BaseRunner, row domain.Row) error {
	res, err := insertQuery(row).
		RunWith(runner).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("executing insert into %s: %w", row.TableName(), err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting affected rows: %w", err)
	}
	if rowsAffected != 1 {
		return fmt.Errorf("insert into %s affected %d rows, but expected exactly 1", row.TableName(), rowsAffected)
	}
	return nil
}
