package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/linkdesk-io/linkdesk/internal/domain/invoice"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/mappers"
	"github.com/linkdesk-io/linkdesk/internal/infrastructure/persistence/models"
	"github.com/linkdesk-io/linkdesk/internal/shared/errors"
)

type InvoiceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.InvoiceMapper
}

func NewInvoiceRepository(db *gorm.DB) invoice.Repository {
	return &InvoiceRepositoryImpl{
		db:     db,
		mapper: mappers.NewInvoiceMapper(),
	}
}

func (r *InvoiceRepositoryImpl) Create(ctx context.Context, i *invoice.Invoice) error {
	model, err := r.mapper.ToModel(i)
	if err != nil {
		return fmt.Errorf("failed to map invoice entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	if err := i.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set invoice ID: %w", err)
	}
	return nil
}

func (r *InvoiceRepositoryImpl) FindByID(ctx context.Context, id uint) (*invoice.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("invoice not found")
		}
		return nil, fmt.Errorf("failed to get invoice by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *InvoiceRepositoryImpl) FindByNumber(ctx context.Context, number string) (*invoice.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("invoice not found")
		}
		return nil, fmt.Errorf("failed to get invoice by number: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *InvoiceRepositoryImpl) List(ctx context.Context, filter invoice.ListFilter, offset, limit int) ([]*invoice.Invoice, int64, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.InvoiceModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	var modelList []*models.InvoiceModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *InvoiceRepositoryImpl) Update(ctx context.Context, i *invoice.Invoice) error {
	model, err := r.mapper.ToModel(i)
	if err != nil {
		return fmt.Errorf("failed to map invoice entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update invoice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("invoice not found")
	}
	return nil
}

func (r *InvoiceRepositoryImpl) ListDuePending(ctx context.Context, limit int) ([]*invoice.Invoice, error) {
	var modelList []*models.InvoiceModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", invoice.StatusPending.String(), time.Now()).
		Order("due_date ASC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list due invoices: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

// NextNumber produces sequential numbers of the form INV-YYYY-NNNN, scoped
// per calendar year.
func (r *InvoiceRepositoryImpl) NextNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).
		Where("number LIKE ?", fmt.Sprintf("INV-%d-%%", year)).
		Count(&count).Error
	if err != nil {
		return "", fmt.Errorf("failed to count invoices for numbering: %w", err)
	}

	return fmt.Sprintf("INV-%d-%04d", year, count+1), nil
}

func (r *InvoiceRepositoryImpl) SumAmountCents(ctx context.Context, filter invoice.ListFilter) (int64, error) {
	var sum *int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.InvoiceModel{}), filter)
	if err := query.Select("SUM(amount_cents)").Scan(&sum).Error; err != nil {
		return 0, fmt.Errorf("failed to sum invoice amounts: %w", err)
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (r *InvoiceRepositoryImpl) applyFilter(query *gorm.DB, filter invoice.ListFilter) *gorm.DB {
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if len(filter.UserIDs) > 0 {
		query = query.Where("user_id IN ?", filter.UserIDs)
	}
	if filter.OrganizationID != 0 {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	return query
}
