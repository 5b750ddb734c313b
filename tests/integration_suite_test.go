package integration_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/grafana/s3remote"
	"github.com/grafana/s3remote/git"
	"github.com/grafana/s3remote/helper"
	"github.com/grafana/s3remote/internal/memstore"
	"github.com/grafana/s3remote/internal/testhelpers"
	"github.com/grafana/s3remote/log"
	"github.com/grafana/s3remote/storage"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Shared test infrastructure
var (
	logger *testhelpers.TestLogger
	ctx    context.Context
)

func TestIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	RegisterFailHandler(Fail)
	RunSpecs(t, "Remote Helper Suite")
}

var _ = BeforeSuite(func() {
	By("Isolating git from user and system configuration")
	home := GinkgoT().TempDir()
	for name, value := range map[string]string{
		"HOME":                home,
		"XDG_CONFIG_HOME":     home,
		"GIT_CONFIG_NOSYSTEM": "1",
	} {
		previous, had := os.LookupEnv(name)
		Expect(os.Setenv(name, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				_ = os.Setenv(name, previous)
			} else {
				_ = os.Unsetenv(name)
			}
		})
	}

	logger = testhelpers.NewTestLogger(GinkgoWriter)
	ctx = log.WithContextLogger(context.Background(), logger)
	logger.Success("Remote helper suite setup complete")
})

var root = storage.NewKey("bucket", "team/project")

// Remote is a bucket shared by several working copies.
type Remote struct {
	Store *memstore.Store
}

// NewRemote returns an empty remote whose clock advances one second per write.
func NewRemote() *Remote {
	return &Remote{
		Store: memstore.New(memstore.WithClock(memstore.SteppingClock(time.Unix(1700000000, 0), time.Second))),
	}
}

// NewLocalRepo creates a working copy that is removed after the test.
func NewLocalRepo() *testhelpers.LocalRepo {
	local, err := testhelpers.NewLocalRepo(GinkgoT().TempDir(), logger)
	Expect(err).NotTo(HaveOccurred())
	return local
}

// Session feeds input to a helper serving local against the remote, as git
// would after spawning git-remote-s3, and returns what the helper printed.
func (r *Remote) Session(local *testhelpers.LocalRepo, input string, opts ...s3remote.Option) string {
	all := append([]s3remote.Option{
		s3remote.WithObjectStore(r.Store),
		s3remote.WithVCS(git.New(local.Path)),
		s3remote.WithRemoteAlias("origin"),
		s3remote.WithoutEncryption(),
		s3remote.WithLogger(logger),
	}, opts...)

	client, err := s3remote.NewClient(root, all...)
	Expect(err).NotTo(HaveOccurred())

	var out bytes.Buffer
	err = helper.New(client, helper.WithLogger(logger)).Run(ctx, strings.NewReader(input), &out)
	Expect(err).NotTo(HaveOccurred())

	logger.Logf("%s[HELPER] %q%s", testhelpers.ColorCyan, out.String(), testhelpers.ColorReset)
	return out.String()
}

// MustGit runs git in local and fails the test on error.
func MustGit(local *testhelpers.LocalRepo, args ...string) string {
	out, err := local.Git(args...)
	Expect(err).NotTo(HaveOccurred())
	return out
}

// MustCommit commits a file change in local and returns the new revision.
func MustCommit(local *testhelpers.LocalRepo, file, content string) string {
	revision, err := local.Commit(file, content)
	Expect(err).NotTo(HaveOccurred())
	return revision
}
