package manage

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"haitch/internal/application/catalog/usecases"
	"haitch/internal/interfaces/http/handlers/testutil"
	"haitch/internal/shared/errors"
)

type mockDeviceModelUCs struct {
	detail *usecases.DeviceModelDetail
	list   []*usecases.DeviceModelDetail
	err    error
}

func (m *mockDeviceModelUCs) Create(_ context.Context, _ string) (*usecases.DeviceModelDetail, error) {
	return m.detail, m.err
}

func (m *mockDeviceModelUCs) Rename(_ context.Context, _ uint, _ string) (*usecases.DeviceModelDetail, error) {
	return m.detail, m.err
}

func (m *mockDeviceModelUCs) Delete(_ context.Context, _ uint) error {
	return m.err
}

func (m *mockDeviceModelUCs) List(_ context.Context) ([]*usecases.DeviceModelDetail, error) {
	return m.list, m.err
}

type mockCustomerUCs struct {
	detail *usecases.CustomerDetail
	list   []*usecases.CustomerDetail
	err    error
}

func (m *mockCustomerUCs) Create(_ context.Context, _ string) (*usecases.CustomerDetail, error) {
	return m.detail, m.err
}

func (m *mockCustomerUCs) Rename(_ context.Context, _ uint, _ string) (*usecases.CustomerDetail, error) {
	return m.detail, m.err
}

func (m *mockCustomerUCs) Delete(_ context.Context, _ uint) error {
	return m.err
}

func (m *mockCustomerUCs) List(_ context.Context) ([]*usecases.CustomerDetail, error) {
	return m.list, m.err
}

func TestCatalogHandler_CreateDeviceModel(t *testing.T) {
	handler := NewCatalogHandler(
		&mockDeviceModelUCs{detail: &usecases.DeviceModelDetail{ID: 1, Name: "HP-4000"}},
		&mockCustomerUCs{},
		testutil.NewMockLogger(),
	)

	c, w := testutil.NewTestContext(http.MethodPost, "/manage/device-models", NameRequest{Name: "HP-4000"})
	testutil.SetAuthContext(c, 1, "admin")

	handler.CreateDeviceModel(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCatalogHandler_CreateDeviceModel_Duplicate(t *testing.T) {
	handler := NewCatalogHandler(
		&mockDeviceModelUCs{err: errors.NewConflictError("device model already exists")},
		&mockCustomerUCs{},
		testutil.NewMockLogger(),
	)

	c, w := testutil.NewTestContext(http.MethodPost, "/manage/device-models", NameRequest{Name: "HP-4000"})
	testutil.SetAuthContext(c, 1, "admin")

	handler.CreateDeviceModel(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCatalogHandler_RenameCustomer_BadID(t *testing.T) {
	handler := NewCatalogHandler(&mockDeviceModelUCs{}, &mockCustomerUCs{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/manage/customers/x", NameRequest{Name: "Acme"})
	testutil.SetURLParam(c, "id", "x")

	handler.RenameCustomer(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_ListCustomers(t *testing.T) {
	handler := NewCatalogHandler(
		&mockDeviceModelUCs{},
		&mockCustomerUCs{list: []*usecases.CustomerDetail{{ID: 1, Name: "Acme"}}},
		testutil.NewMockLogger(),
	)

	c, w := testutil.NewTestContext(http.MethodGet, "/manage/customers", nil)
	testutil.SetAuthContext(c, 1, "admin")

	handler.ListCustomers(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
