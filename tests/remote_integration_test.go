package integration_test

import (
	"strings"

	"github.com/grafana/s3remote"
	"github.com/grafana/s3remote/internal/testhelpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const mainRef = "refs/heads/main"

func pushLine(ref string, force bool) string {
	if force {
		return "push +" + ref + ":" + ref + "\n"
	}
	return "push " + ref + ":" + ref + "\n"
}

var _ = Describe("Remote helper", func() {
	var remote *Remote

	BeforeEach(func() {
		remote = NewRemote()
	})

	It("advertises its capabilities", func() {
		local := NewLocalRepo()
		Expect(remote.Session(local, "capabilities\n\n")).To(Equal("*push\n*fetch\n\n"))
	})

	It("answers unknown commands and keeps the session open", func() {
		local := NewLocalRepo()
		Expect(remote.Session(local, "option progress true\nlist\n\n")).To(Equal("unknown command\n\n\n"))
	})

	Context("pushing history", func() {
		var (
			writer *testhelpers.LocalRepo
			other  *testhelpers.LocalRepo
			revA   string
			revC   string
		)

		BeforeEach(func() {
			By("Creating A in the first working copy")
			writer = NewLocalRepo()
			revA = MustCommit(writer, "file.txt", "A")

			By("Creating unrelated C in a second working copy")
			other = NewLocalRepo()
			revC = MustCommit(other, "other.txt", "C")
		})

		It("keeps only the latest fast-forward and preserves force-pushed history", func() {
			By("Pushing A to an empty remote")
			Expect(remote.Session(writer, pushLine(mainRef, false)+"\n")).To(Equal("ok refs/heads/main\n\n"))
			Expect(remote.Session(writer, "list\n\n")).To(Equal(
				revA + " refs/heads/main\n@refs/heads/main HEAD\n\n"))

			By("Fast-forwarding to B")
			revB := MustCommit(writer, "file.txt", "B")
			Expect(remote.Session(writer, pushLine(mainRef, false)+"\n")).To(Equal("ok refs/heads/main\n\n"))
			Expect(remote.Session(writer, "list for-push\n\n")).To(Equal(
				revB + " refs/heads/main\n@refs/heads/main HEAD\n\n"))
			Expect(remote.Store.Keys()).To(ConsistOf(s3remote.BundleKey(root, mainRef, revB).Path))

			By("Rejecting unrelated C without force")
			out := remote.Session(other, pushLine(mainRef, false)+"\n")
			Expect(out).To(Equal("error refs/heads/main " + s3remote.RejectReason + "\n\n"))
			Expect(remote.Session(writer, "list\n\n")).To(Equal(
				revB + " refs/heads/main\n@refs/heads/main HEAD\n\n"))

			By("Forcing C over B")
			Expect(remote.Session(other, pushLine(mainRef, true)+"\n")).To(Equal("ok refs/heads/main\n\n"))
			recovery := s3remote.StaleRefName(mainRef, revB)
			Expect(remote.Session(writer, "list\n\n")).To(Equal(
				revC + " refs/heads/main\n" +
					revB + " " + recovery + "\n" +
					"@refs/heads/main HEAD\n\n"))

			By("Fetching the preserved version into a fresh working copy")
			fresh := NewLocalRepo()
			Expect(remote.Session(fresh, "fetch "+revB+" "+recovery+"\n\n")).To(Equal("\n"))
			Expect(fresh.HasCommit(revB)).To(BeTrue())
			Expect(fresh.HasCommit(revA)).To(BeTrue(), "bundles carry the full history")
			Expect(fresh.HasCommit(revC)).To(BeFalse())
		})

		It("reports each ref of a batch", func() {
			MustGit(writer, "tag", "v1.0.0")
			MustGit(writer, "branch", "feature")

			out := remote.Session(writer,
				pushLine(mainRef, false)+
					pushLine("refs/tags/v1.0.0", false)+
					pushLine("refs/heads/feature", false)+
					"push refs/heads/main:refs/heads/elsewhere\n"+
					"\n")

			lines := strings.Split(strings.TrimSuffix(out, "\n\n"), "\n")
			Expect(lines).To(HaveLen(4))
			Expect(lines[0]).To(Equal("ok refs/heads/main"))
			Expect(lines[1]).To(Equal("ok refs/tags/v1.0.0"))
			Expect(lines[2]).To(Equal("ok refs/heads/feature"))
			Expect(lines[3]).To(HavePrefix("error refs/heads/elsewhere "))

			Expect(remote.Session(writer, "list\n\n")).To(Equal(
				revA + " refs/heads/feature\n" +
					revA + " refs/heads/main\n" +
					revA + " refs/tags/v1.0.0\n" +
					"@refs/heads/main HEAD\n\n"))
		})

		It("reports a push of an unknown local ref", func() {
			out := remote.Session(writer, pushLine("refs/heads/missing", false)+"\n")
			Expect(out).To(HavePrefix("error refs/heads/missing "))
			Expect(remote.Store.Keys()).To(BeEmpty())
		})
	})

	Context("fetching", func() {
		It("round-trips history into a fresh working copy", func() {
			source := NewLocalRepo()
			MustCommit(source, "a.txt", "one")
			head := MustCommit(source, "a.txt", "two")
			Expect(remote.Session(source, pushLine(mainRef, false)+"\n")).To(Equal("ok refs/heads/main\n\n"))

			target := NewLocalRepo()
			Expect(remote.Session(target, "fetch "+head+" "+mainRef+"\nfetch "+head+" HEAD\n\n")).To(Equal("\n"))
			Expect(target.HasCommit(head)).To(BeTrue())

			MustGit(target, "update-ref", mainRef, head)
			Expect(MustGit(target, "rev-parse", mainRef)).To(Equal(head))
			Expect(MustGit(target, "show", "HEAD:a.txt")).To(Equal("two"))
			Expect(MustGit(target, "rev-list", "--count", mainRef)).To(Equal("2"))
		})
	})
})
