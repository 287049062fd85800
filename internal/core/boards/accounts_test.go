package boards

import (
	"testing"

	"github.com/JonMunkholm/MondayImport/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountsHeader = []string{"Name", "Link", "Login", "Password", "Customer number", "Rep", "Rep email"}

func TestImportWorkshopAccounts(t *testing.T) {
	tbl := table(accountsHeader,
		[]string{"Suppliers"},
		[]string{"Name", "Link"},
		[]string{"Name", "Link"}, // repeated header inside the data
		[]string{"Group Title"},
		[]string{"Acme Trailers", "https://acme.example", "jth", "secret", "C-100", "Jo Bloggs", "jo@acme.example"},
		[]string{"O'Neill Fixings", "", "", "", "", "Pat"}, // rep without email
		[]string{"", "https://orphan.example"},
	)

	e := seqEmitter()
	require.NoError(t, importWorkshopAccounts(tbl, e))

	got := statements(t, e)
	require.Len(t, got, 3)

	acme := got[0]
	assert.Equal(t, "organizations", acme.Table)
	assert.Equal(t, seqID(1), value(t, acme, "id"))
	assert.Equal(t, "business", value(t, acme, "type"))
	assert.Equal(t, core.ToPgText("https://acme.example"), value(t, acme, "website"))
	assert.Equal(t, core.JSONB(`{"customer_number":"C-100","login":"jth"}`), value(t, acme, "metadata"))
	assert.NotContains(t, acme.SQL(), "secret", "passwords are never exported")

	rep := got[1]
	assert.Equal(t, "contacts", rep.Table)
	assert.Equal(t, seqID(1), value(t, rep, "organization_id"), "contact references the organization emitted before it")
	assert.Equal(t, core.ToPgText("Jo Bloggs"), value(t, rep, "first_name"))
	assert.Equal(t, "", value(t, rep, "last_name"))
	assert.Equal(t, "Sales Representative", value(t, rep, "role"))

	oneill := got[2]
	assert.Equal(t, "organizations", oneill.Table)
	assert.Contains(t, oneill.SQL(), "'O''Neill Fixings', 'business', NULL, '{\"customer_number\":null,\"login\":null}'::jsonb);")
}

func TestImportWorkshopAccounts_UnexpectedLayout(t *testing.T) {
	tbl := table([]string{"Name"}, []string{"x"})
	require.ErrorIs(t, importWorkshopAccounts(tbl, seqEmitter()), core.ErrUnexpectedLayout)
}
