package main

import (
	"context"

	"content-hub/internal/logger"

	sdk "github.com/matrixorigin/moi-go-sdk"
)

var knowledge = []sdk.NL2SQLKnowledgeCreateRequest{
	{Type: "glossary", Key: "post", Value: []string{"a row of scheduled_posts: content planned for one social platform on one day"}},
	{Type: "glossary", Key: "ambassador", Value: []string{"an employee sharing a personal referral link; identified by referral_clicks.employee_code"}},
	{Type: "glossary", Key: "follower", Value: []string{"a referral_clicks row with follower_estimate = 1"}},

	{Type: "synonyms", Key: "network/channel/social", Value: []string{"social platform of the post"}, AssociateTables: []string{"scheduled_posts,platform"}},
	{Type: "synonyms", Key: "brand/customer/account", Value: []string{"client the post is for"}, AssociateTables: []string{"scheduled_posts,client"}},
	{Type: "synonyms", Key: "day/when/date", Value: []string{"scheduled day of the post"}, AssociateTables: []string{"scheduled_posts,date_key"}},
	{Type: "synonyms", Key: "employee/referrer/code", Value: []string{"ambassador referral code"}, AssociateTables: []string{"referral_clicks,employee_code"}},

	{Type: "logic", Key: "posts with an attachment have a non-empty file_name", Value: []string{"file_name <> ''"}},
	{Type: "logic", Key: "this week means from Sunday of the current week to Saturday", Value: []string{"calendar weeks start on Sunday"}},

	{Type: "case_library", Key: "how many posts are scheduled per platform this month", Value: []string{"SELECT platform, COUNT(*) FROM scheduled_posts WHERE date_key >= DATE_FORMAT(CURDATE(), '%Y-%m-01') GROUP BY platform"}},
	{Type: "case_library", Key: "which ambassador brought the most followers", Value: []string{"SELECT employee_code, SUM(follower_estimate) AS followers FROM referral_clicks GROUP BY employee_code ORDER BY followers DESC LIMIT 1"}},
	{Type: "case_library", Key: "clicks by source", Value: []string{"SELECT source, COUNT(*) FROM referral_clicks GROUP BY source"}},
}

func initKnowledge(ctx context.Context, client *sdk.RawClient) error {
	for _, k := range knowledge {
		resp, err := client.CreateKnowledge(ctx, &k)
		if err != nil {
			if isDuplicate(err) {
				logger.Info("knowledge: already exists, skipping", "type", k.Type, "key", k.Key)
				continue
			}
			return err
		}
		logger.Info("knowledge: created", "type", k.Type, "key", k.Key, "id", resp.ID)
	}
	return nil
}
