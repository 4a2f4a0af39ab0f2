package cli

import (
	"bytes"
	"io"
	"log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/foodcart/internal/kv"
	"github.com/MikeMC777/foodcart/internal/order"
	"github.com/MikeMC777/foodcart/internal/user"
	"github.com/MikeMC777/foodcart/internal/validate"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "shopctl", cmd.Use)
	assert.Contains(t, cmd.Long, "on-device store")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := [][]string{
		{"register"}, {"login"}, {"ship"}, {"logout"}, {"catalog"},
		{"cart", "add"}, {"cart", "rm"}, {"cart", "show"},
		{"checkout"}, {"orders"},
	}

	for _, path := range commands {
		name := path[len(path)-1]
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err, "Command %v should exist", path)
			require.NotNil(t, subCmd)
			assert.Equal(t, name, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	dbFlag := cmd.PersistentFlags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "", dbFlag.DefValue)

	driverFlag := cmd.PersistentFlags().Lookup("driver")
	require.NotNil(t, driverFlag)
	assert.Equal(t, "", driverFlag.DefValue)
}

func TestRegisterCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	registerCmd, _, err := cmd.Find([]string{"register"})
	require.NoError(t, err)

	pw := registerCmd.Flags().Lookup("password")
	require.NotNil(t, pw)
	assert.Equal(t, "p", pw.Shorthand)
	require.NotNil(t, registerCmd.Flags().Lookup("confirm"))
}

func TestShipCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	shipCmd, _, err := cmd.Find([]string{"ship"})
	require.NoError(t, err)

	require.NotNil(t, shipCmd.Flags().Lookup("phone"))
	require.NotNil(t, shipCmd.Flags().Lookup("address"))
}

func TestDriverValidation(t *testing.T) {
	assert.True(t, isValidDriver("memory"))
	assert.True(t, isValidDriver("sqlite"))
	assert.True(t, isValidDriver("postgres"))
	assert.False(t, isValidDriver("redis"))

	_, err := run(t, "--driver", "redis", "cart", "show")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(order.ErrEmptyCart))
	assert.Equal(t, ExitCommandError, GetExitCode(kv.ErrStorage))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "x")))

	wrapped := WrapExitError(ExitFailure, "open store", kv.ErrStorage)
	assert.ErrorIs(t, wrapped, kv.ErrStorage)
	assert.Equal(t, "open store: storage failure", wrapped.Error())
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
}

// run executes a fresh root command and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "catalog", "--category", "fruit", "-q", "XO")
	require.NoError(t, err)
	assert.Contains(t, out, "Xoài")
	assert.Contains(t, out, "20.000 đ")
	assert.NotContains(t, out, "Chuối")

	_, err = run(t, "catalog", "--category", "drinks")
	var ve *validate.ValidationError
	assert.ErrorAs(t, err, &ve)
}

// Commands share state through the database file, one process per call.
func TestSession_OnSQLiteFile(t *testing.T) {
	db := filepath.Join(t.TempDir(), "shop.db")
	sh := func(args ...string) (string, error) {
		return run(t, append([]string{"--driver", "sqlite", "--db", db}, args...)...)
	}

	out, err := sh("register", "lan", "lan@gmail.com", "-p", "secret", "--confirm", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "Registered lan")

	_, err = sh("login", "lan", "-p", "wrong")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	out, err = sh("login", "lan@gmail.com", "-p", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "Rank:    Bronze")

	_, err = sh("ship", "--phone", "901234567", "--address", "123 Main St")
	var ve *validate.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = sh("ship", "--phone", "0901234567", "--address", "123 Main St")
	require.NoError(t, err)

	_, err = sh("checkout")
	assert.ErrorIs(t, err, order.ErrEmptyCart)

	_, err = sh("cart", "add", "1")
	require.NoError(t, err)
	_, err = sh("cart", "add", "1")
	require.NoError(t, err)
	out, err = sh("cart", "add", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "x2")
	assert.Contains(t, out, "TOTAL: 50.000 đ")

	out, err = sh("cart", "rm", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "TOTAL: 50.000 đ")

	out, err = sh("checkout")
	require.NoError(t, err)
	assert.Contains(t, out, "Customer: lan")
	assert.Contains(t, out, "TOTAL: 50.000 đ")

	out, err = sh("cart", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Cart is empty")

	out, err = sh("orders")
	require.NoError(t, err)
	assert.Contains(t, out, "Order #")
	assert.Contains(t, out, "Chuối x2  30.000 đ")

	_, err = sh("cart", "add", "3")
	require.NoError(t, err)
	out, err = sh("logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	out, err = sh("cart", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Cart is empty")
}

func TestOrders_Empty(t *testing.T) {
	out, err := run(t, "--driver", "memory", "orders")
	require.NoError(t, err)
	assert.Contains(t, out, "No orders yet")
}
