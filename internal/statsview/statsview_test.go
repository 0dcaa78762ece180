package statsview

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_URL(t *testing.T) {
	assert.Equal(t, "http://localhost:12600/debug/statsview", URL(DefaultAddress))
}

func testServe(t *testing.T) chan string {
	t.Helper()
	started := make(chan string, 1)
	orig := serve
	serve = func(addr string) {
		started <- addr
	}
	t.Cleanup(func() {
		serve = orig
	})
	return started
}

func Test_Launch(t *testing.T) {
	started := testServe(t)
	var out bytes.Buffer

	Launch("127.0.0.1:9000", &out)
	assert.Equal(t, "127.0.0.1:9000", <-started)
	assert.Equal(t, "stats server available at http://127.0.0.1:9000/debug/statsview\n", out.String())
}

func Test_Launch_DefaultAddress(t *testing.T) {
	started := testServe(t)
	var out bytes.Buffer

	Launch("", &out)
	assert.Equal(t, DefaultAddress, <-started)
	assert.Contains(t, out.String(), URL(DefaultAddress))
}
