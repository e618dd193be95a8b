package cms

const postFields = `
    databaseId
    slug
    title
    excerpt
    content
    date
    modified
    isSticky
    author {
      node {
        name
        slug
        avatar {
          url
        }
      }
    }
    categories {
      edges {
        node {
          databaseId
          name
          slug
        }
      }
    }
    featuredImage {
      node {
        altText
        caption
        sourceUrl
        srcSet
        sizes
        mediaDetails {
          width
          height
        }
      }
    }`

// seoFields is selected only when the Yoast SEO plugin is installed on the
// WordPress side; the schema field does not exist otherwise.
const seoFields = `
    seo {
      title
      metaDesc
      canonical
      opengraphTitle
      opengraphDescription
      opengraphUrl
      opengraphType
      opengraphSiteName
      opengraphPublishedTime
      opengraphModifiedTime
      twitterTitle
      twitterDescription
      twitterImage {
        sourceUrl
      }
    }`

const listFields = `
    databaseId
    slug
    title
    date
    modified`

func postBySlugQuery(withSEO bool) string {
	fields := postFields
	if withSEO {
		fields += seoFields
	}
	return `query PostBySlug($slug: ID!) {
  post(id: $slug, idType: SLUG) {` + fields + `
  }
}`
}

const postsByCategoryQuery = `query PostsByCategoryId($categoryId: Int!) {
  posts(first: 10000, where: { categoryId: $categoryId, hasPassword: false }) {
    edges {
      node {` + listFields + `
      }
    }
  }
}`

const recentPostsQuery = `query RecentPosts($count: Int!) {
  posts(first: $count, where: { hasPassword: false, orderby: { field: DATE, order: DESC } }) {
    edges {
      node {` + listFields + `
      }
    }
  }
}`
