package game

import "github.com/palemoky/party-games/internal/protocol"

// tallyVotes 统计票数，返回得票最高的目标（允许并列）与最高票数。
// 结果只由 votes 的内容决定，与投票顺序无关。
func tallyVotes(votes map[string]string) (winners []string, maxVotes int) {
	count := make(map[string]int, len(votes))
	for _, target := range votes {
		count[target]++
	}

	for target, n := range count {
		switch {
		case n > maxVotes:
			maxVotes = n
			winners = []string{target}
		case n == maxVotes:
			winners = append(winners, target)
		}
	}
	return winners, maxVotes
}

// voteDetails 将 voter→target 映射转成按名字的明细列表
func (r *Room) voteDetails() []protocol.VoteDetail {
	details := make([]protocol.VoteDetail, 0, len(r.Votes))
	for voterID, targetID := range r.Votes {
		detail := protocol.VoteDetail{Voter: "?", VotedFor: "?"}
		if voter, ok := r.Players[voterID]; ok {
			detail.Voter = voter.Name
		}
		if target, ok := r.Players[targetID]; ok {
			detail.VotedFor = target.Name
		}
		details = append(details, detail)
	}
	return details
}
