package content

import (
	"context"
	"fmt"
	"strings"
)

var platformEmojis = map[Platform]string{
	Instagram: "📸",
	TikTok:    "🎵",
	YouTube:   "🎬",
	Facebook:  "👍",
	Twitter:   "🐦",
	WhatsApp:  "💬",
}

const defaultEmoji = "✨"

var genericHashtags = []string{
	"#ContentCreator",
	"#VideoMarketing",
	"#SocialMedia",
	"#DigitalMarketing",
	"#ContentStrategy",
	"#Engagement",
	"#Viral",
	"#Trending",
	"#CreativeContent",
	"#MarketingTips",
}

var platformTips = map[Platform][]string{
	WhatsApp: {
		"Send messages during business hours (9 AM - 6 PM) for better response rates",
		"Keep messages concise and use emojis to make them more engaging",
		"Include a clear call-to-action like \"Reply YES to learn more\"",
		"Use WhatsApp Status for time-sensitive updates (24-hour visibility)",
		"Personalize messages and avoid spamming - respect user privacy",
	},
	Instagram: {
		"Post during peak hours (9-11 AM or 7-9 PM) for maximum reach",
		"Use the first 3 seconds to hook viewers with compelling visuals",
		"Include a clear call-to-action in your caption",
		"Respond to comments within the first hour to boost engagement",
		"Use Instagram Stories and Reels for additional exposure",
	},
	TikTok: {
		"Post when your audience is most active (6-10 PM)",
		"Hook viewers in the first 2 seconds with trending sounds or effects",
		"Use trending hashtags and participate in challenges",
		"Engage with comments to boost the algorithm",
		"Post consistently (1-3 times per day) for best results",
	},
	YouTube: {
		"Upload during peak hours (2-4 PM on weekdays)",
		"Create compelling thumbnails and titles for higher click-through rates",
		"Include timestamps and chapters for better viewer retention",
		"Engage with comments and create a community",
		"Promote your video across other social platforms",
	},
	Facebook: {
		"Post during lunch hours (12-1 PM) or evenings (7-9 PM)",
		"Use eye-catching visuals or videos for better engagement",
		"Ask questions to encourage comments and discussions",
		"Respond to comments quickly to boost post visibility",
		"Share to relevant groups for wider reach",
	},
	Twitter: {
		"Tweet during peak hours (9 AM, 12 PM, or 5 PM)",
		"Keep tweets concise and use trending hashtags",
		"Include images or GIFs to increase engagement by 150%",
		"Engage with replies and retweets within the first hour",
		"Use Twitter threads for longer content",
	},
}

// TemplateGenerator synthesizes content deterministically. It is the
// generation path when no LLM provider is configured: identical inputs always
// produce identical output.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) Generate(_ context.Context, req Request) (*GeneratedContent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emoji, ok := platformEmojis[req.Platform]
	if !ok {
		emoji = defaultEmoji
	}

	tips, ok := platformTips[req.Platform]
	if !ok {
		tips = platformTips[Instagram]
	}

	hashtags := make([]string, 0, len(genericHashtags)+2)
	hashtags = append(hashtags, "#"+stripWhitespace(req.Topic), "#"+string(req.Platform))
	hashtags = append(hashtags, genericHashtags...)

	out := &GeneratedContent{
		Captions: Captions{
			Short: fmt.Sprintf("%s %s - Check it out!", emoji, req.Topic),
			Medium: fmt.Sprintf("Excited to share this %s video about %s! %s Perfect for %s. Don't miss out!",
				req.Tone, req.Topic, emoji, req.Platform),
			Long: fmt.Sprintf("Hey everyone! %s I'm thrilled to share my latest video about %s. "+
				"This %s content is specially crafted for %s and I think you're going to love it. "+
				"Make sure to watch till the end for some amazing insights! Drop a comment and let me "+
				"know what you think. Your support means everything! 💙",
				emoji, req.Topic, req.Tone, req.Platform),
		},
		Hashtags:       hashtags,
		EngagementTips: append([]string(nil), tips...),
	}
	return out, nil
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
