package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrganizationOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	m := Organization("Karang Taruna Dusun Bogor", "", "", "", nil)
	require.Equal(t, "NGO", m["@type"])
	require.NotContains(t, m, "url")
	require.NotContains(t, m, "address")
	require.NotContains(t, m, "sameAs")

	m = Organization("Karang Taruna Dusun Bogor", "https://kartabogor.or.id", "", "Desa Kenteng", []string{"https://instagram.com/kartabogor"})
	require.Equal(t, "https://kartabogor.or.id", m["url"])
	require.Equal(t, []string{"https://instagram.com/kartabogor"}, m["sameAs"])
}

func TestJSONEscapesScriptTerminators(t *testing.T) {
	t.Parallel()

	out := string(JSON(WebPage("</script><b>", "", "")))
	require.False(t, strings.Contains(out, "</script>"), "payload must not close the script element: %s", out)
	require.Contains(t, out, `\u003c/script\u003e`)
}
