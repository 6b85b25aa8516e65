package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordScanRequest_Validate(t *testing.T) {
	ok := RecordScanRequest{RFID: "04A1B2C3", Tenant: "acme1"}
	assert.NoError(t, ok.Validate())

	noTenant := RecordScanRequest{RFID: "04A1B2C3", Tenant: ""}
	assert.ErrorIs(t, noTenant.Validate(), ErrInvalidTenant)

	reserved := RecordScanRequest{RFID: "04A1B2C3", Tenant: "main"}
	assert.ErrorIs(t, reserved.Validate(), ErrInvalidTenant)

	noRFID := RecordScanRequest{RFID: " ", Tenant: "acme1"}
	assert.ErrorIs(t, noRFID.Validate(), ErrMissingCredential)
}

func TestListRequest_Validate(t *testing.T) {
	ok := ListRequest{Tenant: "acme1"}
	assert.NoError(t, ok.Validate())

	assert.ErrorIs(t, (&ListRequest{}).Validate(), ErrInvalidTenant)
}

func TestWorkerListRequest_Validate(t *testing.T) {
	ok := WorkerListRequest{RFID: "04A1B2C3", Tenant: "acme1"}
	assert.NoError(t, ok.Validate())

	assert.ErrorIs(t, (&WorkerListRequest{Tenant: "acme1"}).Validate(), ErrMissingCredential)
	assert.ErrorIs(t, (&WorkerListRequest{RFID: "x"}).Validate(), ErrInvalidTenant)
}
