package route_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"jw-proxy-go/internal/route"
)

var _ = Describe("Table", func() {
	var table *route.Table

	BeforeEach(func() {
		var err error
		table, err = route.NewTable("https://jw.scut.edu.cn")
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("NewTable", func() {
		It("should derive the upstream origin", func() {
			Expect(table.Origin()).To(Equal("https://jw.scut.edu.cn"))
		})

		It("should build the fixed endpoint URLs", func() {
			Expect(table.URL(route.NoticeEndpoint)).To(Equal("https://jw.scut.edu.cn/zhinan/cms/article/v2/findInformNotice.do"))
			Expect(table.URL(route.PostsEndpoint)).To(Equal("https://jw.scut.edu.cn/zhinan/cms/toPosts.do"))
		})

		It("should keep the notice route ahead of the posts route", func() {
			routes := table.Routes()
			Expect(routes).To(HaveLen(2))
			Expect(routes[0].Endpoint).To(Equal(route.NoticeEndpoint))
			Expect(routes[1].Endpoint).To(Equal(route.PostsEndpoint))
		})

		It("should return a copy of the routes", func() {
			routes := table.Routes()
			routes[0].URL = "mutated"
			Expect(table.URL(route.NoticeEndpoint)).NotTo(Equal("mutated"))
		})

		It("should honour a non-default port", func() {
			t, err := route.NewTable("http://127.0.0.1:8080")
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Origin()).To(Equal("http://127.0.0.1:8080"))
			Expect(t.URL(route.PostsEndpoint)).To(Equal("http://127.0.0.1:8080/zhinan/cms/toPosts.do"))
		})

		It("should reject a base URL without a host", func() {
			_, err := route.NewTable("not-a-url")
			Expect(err).To(HaveOccurred())
		})

		It("should return empty string for an unknown endpoint", func() {
			Expect(table.URL(route.Endpoint(99))).To(BeEmpty())
		})
	})

	DescribeTable("Resolve",
		func(path string, want route.Endpoint) {
			r, err := table.Resolve(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Endpoint).To(Equal(want))
		},
		Entry("bare notice path", "/findInformNotice.do", route.NoticeEndpoint),
		Entry("notice path with prefix", "/zhinan/cms/article/v2/findInformNotice.do", route.NoticeEndpoint),
		Entry("notice path with suffix", "/findInformNotice.do/extra", route.NoticeEndpoint),
		Entry("bare posts path", "/toPosts.do", route.PostsEndpoint),
		Entry("posts path with prefix", "/zhinan/cms/toPosts.do", route.PostsEndpoint),
		Entry("both markers, notice wins", "/toPosts.do/findInformNotice.do", route.NoticeEndpoint),
	)

	DescribeTable("Resolve rejects",
		func(path string) {
			_, err := table.Resolve(path)
			Expect(err).To(MatchError(route.ErrInvalidEndpoint))
		},
		Entry("root", "/"),
		Entry("empty", ""),
		Entry("different case", "/FINDINFORMNOTICE.DO"),
		Entry("missing dot", "/findInformNoticedo"),
		Entry("health path", "/healthz"),
	)

	DescribeTable("Endpoint.String",
		func(e route.Endpoint, want string) {
			Expect(e.String()).To(Equal(want))
		},
		Entry("notice", route.NoticeEndpoint, "notice"),
		Entry("posts", route.PostsEndpoint, "posts"),
		Entry("unknown", route.Endpoint(0), "unknown"),
	)
})
