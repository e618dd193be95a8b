package cms

import (
	"strings"
	"time"
)

type rawPost struct {
	DatabaseID int    `json:"databaseId"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	Date       string `json:"date"`
	Modified   string `json:"modified"`
	IsSticky   bool   `json:"isSticky"`
	Author     *struct {
		Node *struct {
			Name   string `json:"name"`
			Slug   string `json:"slug"`
			Avatar *struct {
				URL string `json:"url"`
			} `json:"avatar"`
		} `json:"node"`
	} `json:"author"`
	Categories *struct {
		Edges []struct {
			Node rawCategory `json:"node"`
		} `json:"edges"`
	} `json:"categories"`
	FeaturedImage *struct {
		Node *rawImage `json:"node"`
	} `json:"featuredImage"`
	SEO *rawSEO `json:"seo"`
}

type rawCategory struct {
	DatabaseID int    `json:"databaseId"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
}

type rawImage struct {
	AltText      string `json:"altText"`
	Caption      string `json:"caption"`
	SourceURL    string `json:"sourceUrl"`
	SrcSet       string `json:"srcSet"`
	Sizes        string `json:"sizes"`
	MediaDetails *struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"mediaDetails"`
}

type rawSEO struct {
	Title                  string `json:"title"`
	MetaDesc               string `json:"metaDesc"`
	Canonical              string `json:"canonical"`
	OpengraphTitle         string `json:"opengraphTitle"`
	OpengraphDescription   string `json:"opengraphDescription"`
	OpengraphURL           string `json:"opengraphUrl"`
	OpengraphType          string `json:"opengraphType"`
	OpengraphSiteName      string `json:"opengraphSiteName"`
	OpengraphPublishedTime string `json:"opengraphPublishedTime"`
	OpengraphModifiedTime  string `json:"opengraphModifiedTime"`
	TwitterTitle           string `json:"twitterTitle"`
	TwitterDescription     string `json:"twitterDescription"`
	TwitterImage           *struct {
		SourceURL string `json:"sourceUrl"`
	} `json:"twitterImage"`
}

type rawPostConnection struct {
	Edges []struct {
		Node rawPost `json:"node"`
	} `json:"edges"`
}

func (rc rawPostConnection) posts() []Post {
	out := make([]Post, 0, len(rc.Edges))
	for _, e := range rc.Edges {
		out = append(out, mapRawPost(e.Node))
	}
	return out
}

func mapRawPost(raw rawPost) Post {
	p := Post{
		DatabaseID: raw.DatabaseID,
		Slug:       raw.Slug,
		Title:      raw.Title,
		Excerpt:    raw.Excerpt,
		Content:    raw.Content,
		Date:       ParseDate(raw.Date),
		Modified:   ParseDate(raw.Modified),
		IsSticky:   raw.IsSticky,
	}
	if raw.Author != nil && raw.Author.Node != nil {
		a := raw.Author.Node
		p.Author = &Author{Name: a.Name, Slug: a.Slug}
		if a.Avatar != nil {
			p.Author.AvatarURL = a.Avatar.URL
		}
	}
	if raw.Categories != nil {
		p.Categories = make([]Category, 0, len(raw.Categories.Edges))
		for _, e := range raw.Categories.Edges {
			p.Categories = append(p.Categories, Category{
				DatabaseID: e.Node.DatabaseID,
				Name:       e.Node.Name,
				Slug:       e.Node.Slug,
			})
		}
	}
	if raw.FeaturedImage != nil && raw.FeaturedImage.Node != nil {
		img := raw.FeaturedImage.Node
		p.FeaturedImage = &FeaturedImage{
			SourceURL: img.SourceURL,
			Caption:   img.Caption,
			AltText:   img.AltText,
			SrcSet:    img.SrcSet,
			Sizes:     img.Sizes,
		}
		if img.MediaDetails != nil {
			p.FeaturedImage.Width = img.MediaDetails.Width
			p.FeaturedImage.Height = img.MediaDetails.Height
		}
	}
	if raw.SEO != nil {
		applySEO(&p, *raw.SEO)
	}
	return p
}

func applySEO(p *Post, seo rawSEO) {
	p.MetaTitle = seo.Title
	p.Description = seo.MetaDesc
	p.Canonical = seo.Canonical
	p.OG = &OpenGraph{
		Title:         seo.OpengraphTitle,
		Description:   seo.OpengraphDescription,
		URL:           seo.OpengraphURL,
		Type:          seo.OpengraphType,
		SiteName:      seo.OpengraphSiteName,
		PublishedTime: seo.OpengraphPublishedTime,
		ModifiedTime:  seo.OpengraphModifiedTime,
	}
	p.Twitter = &Twitter{
		Title:       seo.TwitterTitle,
		Description: seo.TwitterDescription,
	}
	if seo.TwitterImage != nil {
		p.Twitter.ImageURL = seo.TwitterImage.SourceURL
	}
}

// ParseDate parses CMS timestamps. WordPress omits the zone for local
// dates; those are read as UTC. Unparseable input yields the zero time.
func ParseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
