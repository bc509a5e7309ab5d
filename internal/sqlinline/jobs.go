package sqlinline

// Schema for the jobs table, applied out of band:
//
//	create table if not exists jobs (
//	  id            uuid primary key,
//	  prompt        text not null,
//	  status        text not null default 'queued',
//	  urls          text[] not null default '{}',
//	  error_message text not null default '',
//	  created_at    timestamptz not null default now(),
//	  updated_at    timestamptz not null default now()
//	);

const QInsertJob = `--sql
insert into jobs (id, prompt, status)
values ($1::uuid, $2::text, $3::text)`

const QSelectJob = `--sql
select id, prompt, status, urls, error_message, created_at, updated_at
from jobs
where id = $1::uuid`

const QMarkJobDone = `--sql
update jobs
set status = 'done', urls = $2::text[], updated_at = now()
where id = $1::uuid`

const QMarkJobFailed = `--sql
update jobs
set status = 'failed', error_message = $2::text, updated_at = now()
where id = $1::uuid`
