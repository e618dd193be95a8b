package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/headpress/ads"
	"github.com/eringen/headpress/cms"
	"github.com/eringen/headpress/format"
)

// Post renders a full post page.
func Post(pg PostPage) templ.Component {
	return Layout(pg.Site, pg.Meta, pg.JSONLD, PostBody(pg))
}

// PostBody renders the post without the document shell.
func PostBody(pg PostPage) templ.Component {
	return component(func(p *page) {
		post := pg.Post
		if post == nil {
			return
		}
		sticky := ""
		if post.IsSticky {
			sticky = "postSticky"
		}
		p.raw("<article")
		p.attr("class", classes("postContainer", sticky))
		p.raw(`><div class="container"><h1 class="title">`)
		p.trustedHTML(post.Title)
		p.raw("</h1>")
		if post.FeaturedImage != nil {
			p.component(FeaturedImage(*post.FeaturedImage))
		}
		p.component(Metadata(post))
		p.raw(`</div>`)

		p.raw(`<div class="content"><section class="section"><div class="container"><div`)
		p.attr("id", ads.ContentID)
		p.raw(` class="postContent">`)
		p.trustedHTML(post.Content)
		p.raw(`</div></div></section></div>`)

		p.raw(`<section class="section postFooter"><div class="container"><p class="postModified">Last updated on `)
		p.text(format.FmtDate(post.Modified))
		p.raw(".</p>")
		if pg.Related != nil && len(pg.Related.Posts) > 0 {
			p.component(RelatedPosts(*pg.Related))
		}
		p.raw(`</div></section><div`)
		p.attr("id", ads.EndOfContentID)
		p.raw(`></div></article>`)
	})
}

// FeaturedImage renders the post hero image with its optional caption.
func FeaturedImage(img cms.FeaturedImage) templ.Component {
	return component(func(p *page) {
		p.raw(`<figure class="featuredImage"><div class="featuredImageImg"><img`)
		p.attr("src", img.SourceURL)
		p.attr("alt", img.AltText)
		if img.Width > 0 && img.Height > 0 {
			p.attr("width", strconv.Itoa(img.Width))
			p.attr("height", strconv.Itoa(img.Height))
		}
		p.optAttr("srcset", img.SrcSet)
		p.optAttr("sizes", img.Sizes)
		p.raw("></div>")
		if img.Caption != "" {
			p.raw("<figcaption>")
			p.trustedHTML(img.Caption)
			p.raw("</figcaption>")
		}
		p.raw("</figure>")
	})
}

// Metadata renders the author, date, categories and sticky strip.
func Metadata(post *cms.Post) templ.Component {
	return component(func(p *page) {
		p.raw(`<ul class="metadata postMetadata">`)
		if post.Author != nil && post.Author.Name != "" {
			p.raw(`<li class="metadataAuthor"><address>`)
			if post.Author.AvatarURL != "" {
				p.raw(`<img class="metadataAvatar" width="48" height="48" alt=""`)
				p.attr("src", post.Author.AvatarURL)
				p.raw(">")
			}
			p.raw(`By <a rel="author"`)
			p.href(cms.AuthorPathBySlug(post.Author.Slug))
			p.raw(">")
			p.text(post.Author.Name)
			p.raw("</a></address></li>")
		}
		if !post.Date.IsZero() {
			p.raw("<li><time")
			p.attr("datetime", format.ISODate(post.Date))
			p.raw(">")
			p.text(format.FmtDate(post.Date))
			p.raw("</time></li>")
		}
		if len(post.Categories) > 0 {
			p.raw(`<li class="metadataCategories"><ul>`)
			for _, c := range post.Categories {
				p.raw("<li><a")
				p.href(cms.CategoryPathBySlug(c.Slug))
				p.raw(">")
				p.text(c.Name)
				p.raw("</a></li>")
			}
			p.raw("</ul></li>")
		}
		if post.IsSticky {
			p.raw(`<li class="metadataSticky"><span aria-label="Sticky Post" title="Sticky Post">&#128204;</span></li>`)
		}
		p.raw("</ul>")
	})
}

// RelatedPosts renders the "More from" list.
func RelatedPosts(related cms.Related) templ.Component {
	return component(func(p *page) {
		p.raw(`<div class="relatedPosts">`)
		if related.Title.Name != "" {
			p.raw("<span>More from <a")
			p.href(related.Title.Link)
			p.raw(">")
			p.text(related.Title.Name)
			p.raw("</a></span>")
		} else {
			p.raw("<span>More Posts</span>")
		}
		p.raw("<ul>")
		for _, rp := range related.Posts {
			p.raw("<li><a")
			p.href(cms.PostPathBySlug(rp.Slug))
			p.raw(">")
			p.text(rp.Title)
			p.raw("</a></li>")
		}
		p.raw("</ul></div>")
	})
}
