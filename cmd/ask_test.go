package cmd

import (
	"bytes"
	"testing"

	"github.com/mselser95/profitrade/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskCommand(t *testing.T) {
	api := testutil.NewMockCoinGeckoAPI()
	defer api.Close()

	t.Setenv("COINGECKO_API_URL", api.URL)
	t.Setenv("CACHE_BACKEND", "memory")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"ask", "what's", "the", "bitcoin", "price?"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "$45,000.00")
	assert.Equal(t, 1, api.Calls("/simple/price"))
}

func TestAskCommand_RequiresQuery(t *testing.T) {
	rootCmd.SetArgs([]string{"ask"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	assert.Error(t, err)
}

func TestAskCommand_InvalidConfig(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "memcached")

	rootCmd.SetArgs([]string{"ask", "hello"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
